package ui

import (
	"fmt"
	"strings"

	"alignbench/internal/labels"

	"github.com/charmbracelet/lipgloss"
)

// LegendEntry is one algorithm as it appears in a figure legend.
type LegendEntry struct {
	Algo  string
	Name  string
	Color string
}

// BuildLegend resolves display name and color for each algo. The first
// algo missing from either table aborts with its lookup error.
func BuildLegend(reg *labels.Registry, algos []string) ([]LegendEntry, error) {
	entries := make([]LegendEntry, 0, len(algos))
	for _, algo := range algos {
		name, err := reg.AlgorithmName(algo)
		if err != nil {
			return nil, err
		}
		color, err := reg.AlgorithmColor(algo)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LegendEntry{Algo: algo, Name: name, Color: color})
	}
	return entries, nil
}

// RenderLegend draws the entries one per line, with a swatch in the plot
// color when the terminal supports it.
func RenderLegend(title string, entries []LegendEntry) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Name))
	}

	for _, e := range entries {
		swatch := swatchStyle
		if c, ok := TerminalColor(e.Color); ok {
			swatch = swatch.Foreground(c)
		}
		fmt.Fprintf(&b, "%s %-*s %s\n",
			swatch.Render("■"),
			width, e.Name,
			idStyle.Render(fmt.Sprintf("%s, %s", e.Algo, e.Color)),
		)
	}
	return b.String()
}

// RenderError formats a lookup failure for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
