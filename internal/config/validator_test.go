package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "Valid Postgres",
			setup: func() {
				viper.Set("store.type", "postgres")
				viper.Set("store.dsn", "postgres://localhost/bench")
				viper.Set("format", "tsv")
			},
			wantError: false,
		},
		{
			name: "Invalid Format",
			setup: func() {
				viper.Set("format", "csv")
			},
			wantError: true,
			errMsg:    "format must be tsv or whitespace",
		},
		{
			name: "Invalid Store Type",
			setup: func() {
				viper.Set("store.type", "mongo")
			},
			wantError: true,
			errMsg:    "store.type must be sqlite or postgres",
		},
		{
			name: "Postgres Without DSN",
			setup: func() {
				viper.Set("store.type", "postgres")
			},
			wantError: true,
			errMsg:    "store.dsn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			tt.setup()

			err := ValidateConfig()
			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	viper.Reset()
}

func TestValidateConfig_ReportsAll(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("format", "csv")
	viper.Set("store.type", "mongo")

	err := ValidateConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "format must be")
	assert.Contains(t, err.Error(), "store.type must be")
}
