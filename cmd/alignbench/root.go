package main

import (
	"fmt"
	"os"

	"alignbench/internal/config"
	"alignbench/internal/db"
	"alignbench/internal/labels"
	"alignbench/internal/table"
	"alignbench/internal/telemetry"
	"alignbench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "alignbench",
	Short: "Normalize sequence-alignment benchmark tables for plotting",
	Long: `alignbench reads the tables produced by alignment benchmarks, appends
per-base-pair metrics and resolves the colors, names, units, markers and
line styles used in the evaluation figures.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if path := viper.GetString("metrics_file"); path != "" {
			return telemetry.WriteMetrics(path)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.RenderError(err))
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./alignbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("format", "", "Input table format: tsv or whitespace (default whitespace)")
	rootCmd.PersistentFlags().String("vocabulary", "", "YAML file layered over the built-in labels")
	rootCmd.PersistentFlags().String("log-file", "", "Also append JSON logs to this file")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
}

// bindFlags maps persistent flags onto viper keys. It runs on every
// invocation so a viper.Reset between runs keeps the bindings.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("vocabulary", flags.Lookup("vocabulary"))
	viper.BindPFlag("log_file", flags.Lookup("log-file"))
	viper.BindPFlag("metrics_file", flags.Lookup("metrics-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	bindFlags(cmd)
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}
	settings := config.Current()
	telemetry.InitLogger(settings.Verbose, settings.LogFile)
	return nil
}

// newRegistry builds the label registry, layering the configured
// vocabulary file over the defaults.
func newRegistry() (*labels.Registry, error) {
	vocab := labels.DefaultVocabulary()
	if path := config.Current().Vocabulary; path != "" {
		override, err := labels.LoadVocabulary(path)
		if err != nil {
			return nil, err
		}
		vocab = vocab.Merge(override)
	}
	return labels.New(vocab), nil
}

func openStore() (db.Store, error) {
	settings := config.Current()
	store, err := db.NewStore(db.StoreConfig{Type: settings.StoreType, ConnectionString: settings.StoreDSN})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

// readTable reads path, or stdin when path is "-".
func readTable(cmd *cobra.Command, path string, format table.Format) (*table.Table, error) {
	if path == "-" {
		return table.Read(cmd.InOrStdin(), format)
	}
	return table.ReadFile(path, format)
}

// writeTable writes t as TSV to out, or to stdout when out is empty.
func writeTable(cmd *cobra.Command, out string, t *table.Table) error {
	if out == "" {
		return t.Write(cmd.OutOrStdout())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}
	telemetry.LogInfof("Wrote %d rows to %s", len(t.Rows), out)
	return nil
}

func inputFormat() (table.Format, error) {
	return table.ParseFormat(config.Current().Format)
}
