package main

import (
	"fmt"
	"text/tabwriter"

	"alignbench/internal/benchmark"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [FILE]",
	Short: "Print per-algorithm means of a performance table",
	Long: `Normalize a performance table and print, per algorithm, the number of
reads and the mean explored_per_bp, t(map)_per_bp and error_rate.
Zero-length reads are counted but left out of the means.

Use --run to summarize a stored run instead of a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, _ := cmd.Flags().GetString("algo")
		run, _ := cmd.Flags().GetString("run")

		var records []benchmark.Record
		switch {
		case run != "" && len(args) > 0:
			return fmt.Errorf("pass either FILE or --run, not both")
		case run != "":
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			records, err = store.LoadRun(run)
			if err != nil {
				return err
			}
		case len(args) == 1:
			pt, err := loadPerformance(cmd, args[0], algo)
			if err != nil {
				return err
			}
			records = pt.Records
		default:
			return fmt.Errorf("FILE or --run is required")
		}

		reg, err := newRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ALGORITHM\tREADS\t%s\t%s\t%s\n",
			reg.ColumnName(benchmark.ColExploredPerBP),
			reg.ColumnName(benchmark.ColTMapPerBP),
			reg.ColumnName(benchmark.ColErrorRate),
		)
		for _, s := range benchmark.Summarize(records, nil) {
			name := "(unknown)"
			if s.Algo != "" {
				if name, err = reg.AlgorithmName(s.Algo); err != nil {
					return err
				}
			}
			fmt.Fprintf(w, "%s\t%d\t%.4g\t%.4g\t%.4g\n", name, s.Reads, s.ExploredPerBP, s.TMapPerBP, s.ErrorRate)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().String("algo", "", "Force every row's algo to this value")
	summaryCmd.Flags().String("run", "", "Summarize a stored run")
}
