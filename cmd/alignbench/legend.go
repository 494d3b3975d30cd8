package main

import (
	"fmt"

	"alignbench/internal/benchmark"
	"alignbench/internal/ui"

	"github.com/spf13/cobra"
)

var legendCmd = &cobra.Command{
	Use:   "legend [ALGO...]",
	Short: "Print the figure legend in plot colors",
	Long: `Print the display name and plot color of each algorithm. Without
arguments the aligners compared in the evaluation are listed in legend order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		color, _ := cmd.Flags().GetString("color")
		if err := ui.SetColorMode(color); err != nil {
			return err
		}

		algos := args
		if len(algos) == 0 {
			algos = benchmark.DefaultAlgoOrder
		}

		reg, err := newRegistry()
		if err != nil {
			return err
		}
		entries, err := ui.BuildLegend(reg, algos)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderLegend(title, entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(legendCmd)
	legendCmd.Flags().String("title", "Aligners", "Legend title")
	legendCmd.Flags().String("color", "auto", "Color output: auto, always or never")
}
