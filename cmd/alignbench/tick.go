package main

import (
	"errors"
	"fmt"
	"strconv"

	"alignbench/internal/labels"

	"github.com/spf13/cobra"
)

var tickCmd = &cobra.Command{
	Use:   "tick VALUE...",
	Short: "Format log-axis tick labels",
	Long: `Print the LaTeX label of each tick value, one per line. Only zero and exact
powers of ten have a label; any other value is an error unless --fallback is
set, in which case the "c x 10^e" form is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fallback, _ := cmd.Flags().GetBool("fallback")

		for pos, arg := range args {
			value, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid tick value %q: %w", arg, err)
			}
			label, err := labels.FormatLogTick(value, pos)
			if err != nil {
				var tickErr *labels.TickError
				if !fallback || !errors.As(err, &tickErr) || tickErr.Fallback == "" {
					return err
				}
				label = tickErr.Fallback
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tickCmd)
	tickCmd.Flags().Bool("fallback", false, "Print the coefficient form for values that are not powers of ten")
}
