package main

import (
	"fmt"

	"alignbench/internal/benchmark"
	"alignbench/internal/table"

	"github.com/spf13/cobra"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate FILE",
	Short: "Append head_Mbp to an aggregation table",
	Long: `Read a tab-separated aggregation table and print it with head_Mbp
(reference length in megabase pairs) appended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		raw, err := readTable(cmd, args[0], table.TSV)
		if err != nil {
			return err
		}
		agg, err := benchmark.NormalizeAggregation(raw)
		if err != nil {
			return fmt.Errorf("failed to normalize %s: %w", args[0], err)
		}
		return writeTable(cmd, out, agg)
	},
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
	aggregateCmd.Flags().StringP("out", "o", "", "Write the table to this file instead of stdout")
}
