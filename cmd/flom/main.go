// Package main provides the flom CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flom/internal/convert"
	"flom/internal/core"
	"flom/internal/odesli"
	"flom/internal/output"
	"flom/internal/prompt"
	"flom/internal/shorten"
)

const fallbackEditor = "vi"

var (
	cfgFile string
	config  *core.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "flom [url...]",
	Short: "Convert music streaming links between platforms",
	Long: `flom converts a music streaming link (Spotify, Apple Music, YouTube Music, ...)
into the equivalent link on another platform via the Odesli lookup API,
and can shorten arbitrary URLs via is.gd.

URLs are taken from the arguments, from --input, or from piped stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: runRoot,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the flom configuration file",
}

var configEditCmd = &cobra.Command{
	Use:           "edit",
	Short:         "Open the configuration file in $EDITOR",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:           "path",
	Short:         "Print the configuration file location",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(*cobra.Command, []string) error {
		path, err := core.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PreRunE = func(*cobra.Command, []string) error {
		return setup()
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.flom/config.toml)")
	rootCmd.PersistentFlags().String("log-level", core.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().String("to", "", "target platform (spotify, apple-music, itunes, youtube, youtube-music, tidal, deezer, amazon-music, all, songlink)")
	rootCmd.Flags().Bool("shorten", false, "shorten the URL instead of converting it")
	rootCmd.Flags().String("input", "", "file with one URL per line")
	rootCmd.Flags().Bool("simple", false, "print bare URLs only")

	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the effective configuration and the logger. It runs for the
// conversion/shortening flow only, so a broken config file can still be fixed
// with "flom config edit".
func setup() error {
	v, err := core.NewViper(cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("%w: %v", core.ErrConfig, err)
	}

	config = core.BuildConfig(v)
	logger = buildLogger(config.Log.Level)
	return nil
}

func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.WarnLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	defer func() {
		_ = logger.Sync()
	}()

	flagTo, _ := cmd.Flags().GetString("to")
	flagShorten, _ := cmd.Flags().GetBool("shorten")
	flagSimple, _ := cmd.Flags().GetBool("simple")
	inputPath, _ := cmd.Flags().GetString("input")

	stdinIsTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	urls, err := gatherInputs(args, inputPath, stdinIsTerminal)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("%w: no input URLs provided", core.ErrMalformedInput)
	}

	presenter := output.NewPresenter(flagSimple || config.Output.Simple)

	if flagShorten {
		return runShorten(ctx, urls, presenter)
	}

	target := flagTo
	if target == "" {
		target = config.Defaults.Target
	}

	var selector convert.Selector
	if stdinIsTerminal {
		selector = prompt.NewPicker()
	} else {
		selector = prompt.NewScriptedSelector(os.Stdin, os.Stderr)
	}

	converter := convert.New(
		odesli.NewClient(config, logger.Named("odesli")),
		selector,
		logger.Named("convert"),
	)

	success, failed := 0, 0
	for _, url := range urls {
		results, err := converter.Convert(ctx, url, target)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed %s: %v\n", url, err)
			continue
		}
		success++
		for i := range results {
			fmt.Println(presenter.Conversion(&results[i]))
		}
	}

	return finish(presenter, success, failed)
}

func runShorten(ctx context.Context, urls []string, presenter *output.Presenter) error {
	client := shorten.NewClient(logger.Named("shorten"))

	success, failed := 0, 0
	for _, url := range urls {
		link, err := client.Shorten(ctx, url)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed %s: %v\n", url, err)
			continue
		}
		success++
		fmt.Println(presenter.Shortened(link))
	}

	return finish(presenter, success, failed)
}

// finish prints the run summary (kept off stdout in simple mode, which emits
// bare URLs only) and turns any failure into a non-zero exit.
func finish(presenter *output.Presenter, success, failed int) error {
	if !presenter.Simple() {
		fmt.Println(presenter.Summary(success+failed, success, failed))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, success+failed)
	}
	return nil
}

// gatherInputs collects URLs from the arguments, the --input file, and piped
// stdin (only when no other input was given).
func gatherInputs(args []string, inputPath string, stdinIsTerminal bool) ([]string, error) {
	urls := append([]string(nil), args...)

	if inputPath != "" {
		content, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read input file: %v", core.ErrMalformedInput, err)
		}
		urls = append(urls, parseLines(string(content))...)
	}

	if len(urls) == 0 && !stdinIsTerminal {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read stdin: %v", core.ErrMalformedInput, err)
		}
		urls = append(urls, parseLines(string(content))...)
	}

	return urls, nil
}

func parseLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func runConfigEdit(*cobra.Command, []string) error {
	path, err := core.EnsureConfigFile()
	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = fallbackEditor
	}

	edit := exec.Command(editor, path)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	if err := edit.Run(); err != nil {
		return fmt.Errorf("%w: editor failed: %v", core.ErrConfig, err)
	}
	return nil
}
