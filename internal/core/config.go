package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultUserCountry is used when neither the config file nor the
	// environment specifies a country for lookups.
	DefaultUserCountry = "US"
	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	configDirName  = ".flom"
	configFileName = "config.toml"
	configDirPerm  = 0o700
	// configFilePerm restricts the file to the owner; the API key inside is
	// still plain text, a documented limitation.
	configFilePerm = 0o600
)

// Config is the effective configuration for one invocation, merged once at
// startup and read-only afterwards.
type Config struct {
	API      APIConfig
	Defaults DefaultsConfig
	Output   OutputConfig
	Log      LogConfig
}

// APIConfig carries credentials for the lookup service.
type APIConfig struct {
	OdesliKey string
}

// DefaultsConfig carries the default conversion target and lookup country.
type DefaultsConfig struct {
	Target      string
	UserCountry string
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Simple bool
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string
}

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			UserCountry: DefaultUserCountry,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// envBindings maps config keys to their environment variable overrides.
var envBindings = map[string]string{
	"api.odesli_key":       "FLOM_ODESLI_KEY",
	"default.target":       "FLOM_DEFAULT_TARGET",
	"default.user_country": "FLOM_USER_COUNTRY",
	"output.simple":        "FLOM_OUTPUT_SIMPLE",
}

// ConfigPath returns the per-user config file location (~/.flom/config.toml).
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: home directory not found: %v", ErrConfig, err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// NewViper builds a viper instance bound to the TOML config file and the
// FLOM_* environment variables. A missing file is fine (all defaults); an
// unreadable or unparsable one is a ConfigError.
func NewViper(cfgFile string) (*viper.Viper, error) {
	if cfgFile == "" {
		path, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		cfgFile = path
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("toml")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}

	return v, nil
}

// BuildConfig merges defaults, the config file, and environment overrides into
// one immutable snapshot. Environment wins over file; per-key defaults fill
// whatever remains empty.
func BuildConfig(v *viper.Viper) *Config {
	cfg := DefaultConfig()

	cfg.API.OdesliKey = v.GetString("api.odesli_key")
	cfg.Defaults.Target = v.GetString("default.target")
	if country := v.GetString("default.user_country"); country != "" {
		cfg.Defaults.UserCountry = country
	}
	cfg.Output.Simple = v.GetBool("output.simple")
	if level := v.GetString("log.level"); level != "" {
		cfg.Log.Level = level
	}

	return cfg
}

// fileConfig mirrors the on-disk TOML layout for writing.
type fileConfig struct {
	API     fileAPIConfig     `toml:"api"`
	Default fileDefaultConfig `toml:"default"`
	Output  fileOutputConfig  `toml:"output"`
}

type fileAPIConfig struct {
	OdesliKey string `toml:"odesli_key"`
}

type fileDefaultConfig struct {
	Target      string `toml:"target"`
	UserCountry string `toml:"user_country"`
}

type fileOutputConfig struct {
	Simple bool `toml:"simple"`
}

// EnsureConfigFile creates the config file with default contents when it does
// not exist yet and returns its path.
func EnsureConfigFile() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return "", fmt.Errorf("%w: failed to create config dir: %v", ErrConfig, err)
	}

	content, err := toml.Marshal(fileConfig{
		Default: fileDefaultConfig{UserCountry: DefaultUserCountry},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize config: %v", ErrConfig, err)
	}

	if err := os.WriteFile(path, content, configFilePerm); err != nil {
		return "", fmt.Errorf("%w: failed to write config: %v", ErrConfig, err)
	}

	return path, nil
}
