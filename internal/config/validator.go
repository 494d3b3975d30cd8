package config

import (
	"fmt"
	"strings"

	"alignbench/internal/table"

	"github.com/spf13/viper"
)

var storeTypes = map[string]bool{
	"sqlite": true, "sqlite3": true, "postgres": true, "postgresql": true,
}

// ValidateConfig validates configuration values and returns an error listing
// every invalid key. Call it after Load.
func ValidateConfig() error {
	var errors []string

	if _, err := table.ParseFormat(viper.GetString("format")); err != nil {
		errors = append(errors, fmt.Sprintf("format must be tsv or whitespace, got: %q", viper.GetString("format")))
	}

	storeType := strings.ToLower(viper.GetString("store.type"))
	if storeType != "" && !storeTypes[storeType] {
		errors = append(errors, fmt.Sprintf("store.type must be sqlite or postgres, got: %q", storeType))
	}
	if (storeType == "postgres" || storeType == "postgresql") && viper.GetString("store.dsn") == "" {
		errors = append(errors, "store.dsn is required for postgres")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
