package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"alignbench/internal/benchmark"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage stored benchmark runs",
	Long:  `List, show and delete runs saved with "normalize --save".`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tROWS\tCRUMBS\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", r.Name, r.Rows, r.HasCrumbs, r.CreatedAt.Local().Format(time.DateTime))
		}
		return w.Flush()
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a stored run as TSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.LoadRun(args[0])
		if err != nil {
			return err
		}
		return writeTable(cmd, out, benchmark.RecordsTable(records))
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteRun(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsDeleteCmd)
	runsShowCmd.Flags().StringP("out", "o", "", "Write the table to this file instead of stdout")
}
