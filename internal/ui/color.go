package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorModes are the accepted values of SetColorMode.
var ColorModes = []string{"auto", "always", "never"}

// SetColorMode overrides terminal color detection. "auto" leaves the
// detected profile alone, "always" forces true color and "never" strips
// all styling.
func SetColorMode(mode string) error {
	switch mode {
	case "", "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("color must be one of %v, got %q", ColorModes, mode)
	}
	return nil
}
