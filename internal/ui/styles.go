package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// This file centralizes the lipgloss styles used by the CLI output.

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	swatchStyle = lipgloss.NewStyle().Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")) // Gray

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)

// namedColors covers the matplotlib colors used by the figure vocabulary,
// plus a few common extras for user supplied vocabularies.
var namedColors = map[string]string{
	"black":          "#000000",
	"blue":           "#0000FF",
	"cornflowerblue": "#6495ED",
	"darkorange":     "#FF8C00",
	"forestgreen":    "#228B22",
	"gray":           "#808080",
	"green":          "#008000",
	"grey":           "#808080",
	"mediumseagreen": "#3CB371",
	"orange":         "#FFA500",
	"purple":         "#800080",
	"red":            "#FF0000",
	"yellow":         "#FFFF00",
}

// TerminalColor maps a matplotlib color name or hex string to a lipgloss
// color. ok is false for names it does not know.
func TerminalColor(name string) (lipgloss.Color, bool) {
	if strings.HasPrefix(name, "#") {
		return lipgloss.Color(name), true
	}
	hex, ok := namedColors[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return lipgloss.Color(hex), true
}
