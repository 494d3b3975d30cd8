package main

import (
	"fmt"
	"strconv"

	"alignbench/internal/labels"

	"github.com/spf13/cobra"
)

var labelKinds = []string{"color", "name", "column", "unit", "linestyle", "marker"}

var labelCmd = &cobra.Command{
	Use:   "label color|name|column|unit|linestyle|marker KEY",
	Short: "Look up a single presentation attribute",
	Long: `Resolve KEY in one of the label tables.

color and name take an algorithm id, column and unit take a column id, and
linestyle and marker take a read length. Unknown algorithms and read lengths
are errors; unknown columns are printed back unchanged.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: labelKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}
		value, err := lookupLabel(reg, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func lookupLabel(reg *labels.Registry, kind, key string) (string, error) {
	switch kind {
	case "color":
		return reg.AlgorithmColor(key)
	case "name":
		return reg.AlgorithmName(key)
	case "column":
		return reg.ColumnName(key), nil
	case "unit":
		return reg.ColumnUnit(key), nil
	case "linestyle", "marker":
		n, err := strconv.Atoi(key)
		if err != nil {
			return "", fmt.Errorf("read length must be an integer, got %q", key)
		}
		if kind == "linestyle" {
			return reg.LineStyle(n)
		}
		return reg.Marker(n)
	}
	return "", fmt.Errorf("unknown label kind %q (expected one of %v)", kind, labelKinds)
}
