package ui

import (
	"bytes"
	"log/slog"
	"testing"

	"alignbench/internal/labels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietRegistry() *labels.Registry {
	return labels.Default(
		labels.WithLogger(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))),
		labels.WithMissHook(nil),
	)
}

func TestBuildLegend(t *testing.T) {
	entries, err := BuildLegend(quietRegistry(), []string{"dijkstra", "astar-seeds"})
	require.NoError(t, err)

	assert.Equal(t, []LegendEntry{
		{Algo: "dijkstra", Name: "Dijkstra", Color: "darkorange"},
		{Algo: "astar-seeds", Name: "Seeds heuristic", Color: "mediumseagreen"},
	}, entries)
}

func TestBuildLegend_Unknown(t *testing.T) {
	_, err := BuildLegend(quietRegistry(), []string{"dijkstra", "bwa"})
	assert.ErrorIs(t, err, labels.ErrUnknownIdentifier)

	// "astar" has a name but no color.
	_, err = BuildLegend(quietRegistry(), []string{"astar"})
	assert.ErrorIs(t, err, labels.ErrUnknownIdentifier)
}

func TestRenderLegend(t *testing.T) {
	out := RenderLegend("Aligners", []LegendEntry{
		{Algo: "dijkstra", Name: "Dijkstra", Color: "darkorange"},
		{Algo: "custom", Name: "Custom", Color: "not-a-color"},
	})

	assert.Contains(t, out, "Aligners")
	assert.Contains(t, out, "Dijkstra")
	assert.Contains(t, out, "dijkstra, darkorange")
	assert.Contains(t, out, "custom, not-a-color")
}

func TestTerminalColor(t *testing.T) {
	c, ok := TerminalColor("CornflowerBlue")
	assert.True(t, ok)
	assert.Equal(t, "#6495ED", string(c))

	c, ok = TerminalColor("#123456")
	assert.True(t, ok)
	assert.Equal(t, "#123456", string(c))

	_, ok = TerminalColor("chartreuse-ish")
	assert.False(t, ok)
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(assert.AnError), assert.AnError.Error())
}
