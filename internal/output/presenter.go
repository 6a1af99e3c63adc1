// Package output renders conversion and shortening results for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flom/internal/core"
	"flom/pkg/platform"
)

var (
	fromStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	toStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// Presenter formats results. Pure formatting: it returns strings and never
// writes anywhere itself.
type Presenter struct {
	simple bool
}

// NewPresenter creates a presenter. In simple mode only bare URLs are emitted.
func NewPresenter(simple bool) *Presenter {
	return &Presenter{simple: simple}
}

// Simple reports whether the presenter is in simple mode.
func (p *Presenter) Simple() bool {
	return p.simple
}

// Conversion renders one conversion result.
func (p *Presenter) Conversion(result *core.ConversionResult) string {
	if p.simple {
		return result.TargetURL
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", fromStyle.Render("From:"), sourceLine(result))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("URL:"), result.SourceURL)
	fmt.Fprintf(&b, "%s %s\n", toStyle.Render("To:"), targetLine(result))
	if result.Warning != "" {
		fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("Warning:"), result.Warning)
	}
	return b.String()
}

// Shortened renders one shortening result.
func (p *Presenter) Shortened(link *core.ShortenedLink) string {
	if p.simple {
		return link.ShortURL
	}
	return fmt.Sprintf("%s -> %s", link.LongURL, toStyle.Render(link.ShortURL))
}

// Summary renders the per-run totals line.
func (p *Presenter) Summary(total, success, failed int) string {
	return fmt.Sprintf("%s Total: %d | Success: %d | Failed: %d",
		summaryStyle.Render("Summary:"), total, success, failed)
}

// displayName maps a platform key to its display name, falling back to the
// raw key for platforms outside the supported set.
func displayName(key string) string {
	if key == "" {
		return "Unknown"
	}
	if p, ok := platform.FromKey(key); ok {
		return p.DisplayName()
	}
	return key
}

func sourceLine(result *core.ConversionResult) string {
	name := displayName(result.SourcePlatform)
	if result.SourceInfo == nil {
		return name
	}

	title := result.SourceInfo.Title
	if title == "" {
		title = "Unknown title"
	}
	artist := result.SourceInfo.Artist
	if artist == "" {
		artist = "Unknown artist"
	}
	return fmt.Sprintf("%s - %s / %s", name, title, artist)
}

func targetLine(result *core.ConversionResult) string {
	if result.TargetURL == "" {
		return "(no target url)"
	}
	return fmt.Sprintf("%s %s", displayName(result.TargetPlatform), result.TargetURL)
}
