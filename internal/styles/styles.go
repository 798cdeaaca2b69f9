// Package styles holds the terminal palette and render helpers shared by the
// showcase, the REPL and command output.
package styles

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Palette.
var (
	ColorGray   = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#02A94F", Dark: "#04D36A"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#F25D5D"}
)

var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorRed)
	DimStyle    = lipgloss.NewStyle().Faint(true)
)

// SetEnabled switches colour output on or off for the default renderer.
// When disabled every Render helper returns plain text apart from layout.
func SetEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorFromEnv reports whether colour should be used according to NO_COLOR.
func ColorFromEnv() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

// RenderHeader renders a section heading.
func RenderHeader(s string) string { return HeaderStyle.Render(s) }

// RenderLabel renders a field label.
func RenderLabel(s string) string { return LabelStyle.Render(s) }

// RenderValue renders a successful result.
func RenderValue(s string) string { return ValueStyle.Render(s) }

// RenderError renders a failure message.
func RenderError(s string) string { return ErrorStyle.Render(s) }

// RenderDim renders secondary text.
func RenderDim(s string) string { return DimStyle.Render(s) }

// Box returns the rounded border style used for grouped output.
// width <= 0 leaves the box sized to its content.
func Box(width int) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)
	if width > 0 {
		// lipgloss widths exclude the border.
		st = st.Width(width - 2)
	}
	return st
}

// Width returns the display width of s, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate clips s to width display cells, keeping escape sequences intact
// and appending an ellipsis when text was removed.
func Truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
