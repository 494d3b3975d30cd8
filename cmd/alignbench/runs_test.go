package main

import (
	"strings"
	"testing"

	"alignbench/internal/db"
	"alignbench/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsCommand(t *testing.T) {
	dir := setupCLI(t)
	in := writeFile(t, dir, "perf.txt", perfInput)

	t.Run("Empty", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "runs", "list")
		require.NoError(t, err)
		assert.Equal(t, "No runs found.\n", out)
	})

	_, err := executeCommand(rootCmd, "normalize", in, "--save", "baseline")
	require.NoError(t, err)

	t.Run("List", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "runs", "list")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "NAME")
		assert.Contains(t, lines[1], "baseline")
		assert.Contains(t, lines[1], "3")
		assert.Contains(t, lines[1], "false")
	})

	t.Run("Show", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "runs", "show", "baseline")
		require.NoError(t, err)

		got, err := table.Read(strings.NewReader(out), table.TSV)
		require.NoError(t, err)
		require.Len(t, got.Rows, 3)
		names, _ := got.Column("readname")
		assert.Equal(t, []string{"r1", "r2", "r3"}, names)
		rates, _ := got.Column("error_rate")
		assert.Equal(t, []string{"0.02", "0", "0.1"}, rates)
	})

	t.Run("Delete", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "runs", "delete", "baseline")
		require.NoError(t, err)
		assert.Equal(t, "Deleted run baseline\n", out)

		_, err = executeCommand(rootCmd, "runs", "show", "baseline")
		assert.ErrorIs(t, err, db.ErrRunNotFound)

		_, err = executeCommand(rootCmd, "runs", "delete", "baseline")
		assert.ErrorIs(t, err, db.ErrRunNotFound)
	})
}
