package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. ALIGNBENCH_STORE_TYPE.
const EnvPrefix = "ALIGNBENCH"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Format      string
	StoreType   string
	StoreDSN    string
	Vocabulary  string
	Verbose     bool
	LogFile     string
	MetricsFile string
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("format", "whitespace")
	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", "")
	viper.SetDefault("vocabulary", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_file", "")
}

// Load initializes the configuration from .env, config file and environment
// variables. An explicit cfgFile must exist; the implicit ./alignbench.yaml
// is optional.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("alignbench")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	return nil
}

// Current returns the settings currently held by viper.
func Current() Settings {
	return Settings{
		Format:      viper.GetString("format"),
		StoreType:   viper.GetString("store.type"),
		StoreDSN:    viper.GetString("store.dsn"),
		Vocabulary:  viper.GetString("vocabulary"),
		Verbose:     viper.GetBool("verbose"),
		LogFile:     viper.GetString("log_file"),
		MetricsFile: viper.GetString("metrics_file"),
	}
}
