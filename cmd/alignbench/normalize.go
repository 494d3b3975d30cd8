package main

import (
	"fmt"

	"alignbench/internal/benchmark"
	"alignbench/internal/telemetry"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Append per-bp metrics to a performance table",
	Long: `Read a performance table (one row per read and aligner) and print it as TSV
with pushed+popped, explored_per_bp, t(map)_per_bp, crumbs_per_bp and
error_rate appended. Use "-" to read from stdin.

Use --save to keep the normalized records in the run store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, _ := cmd.Flags().GetString("algo")
		out, _ := cmd.Flags().GetString("out")
		save, _ := cmd.Flags().GetString("save")

		pt, err := loadPerformance(cmd, args[0], algo)
		if err != nil {
			return err
		}

		if save != "" {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveRun(save, pt.Records); err != nil {
				return fmt.Errorf("failed to save run %s: %w", save, err)
			}
			telemetry.LogInfof("Saved run %s with %d records", save, len(pt.Records))
		}

		return writeTable(cmd, out, pt.Table())
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().String("algo", "", "Force every row's algo to this value")
	normalizeCmd.Flags().StringP("out", "o", "", "Write the table to this file instead of stdout")
	normalizeCmd.Flags().String("save", "", "Save the normalized records as a named run")
}

func loadPerformance(cmd *cobra.Command, path, algo string) (*benchmark.PerformanceTable, error) {
	format, err := inputFormat()
	if err != nil {
		return nil, err
	}
	raw, err := readTable(cmd, path, format)
	if err != nil {
		return nil, err
	}
	pt, err := benchmark.NormalizePerformance(raw, benchmark.Options{AlgoOverride: algo})
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", path, err)
	}
	return pt, nil
}
