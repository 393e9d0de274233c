package config

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/mlind/helpkit/internal/guard"
)

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()

	tests := []struct {
		name     string
		actual   interface{}
		expected interface{}
	}{
		{"Verbose", cfg.Verbose, false},
		{"Debug", cfg.Debug, false},
		{"JSON", cfg.JSON, false},
		{"ErrorLevel", cfg.ErrorLevel, guard.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.actual, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("debug", true)
	viper.Set("error_level", "error")

	cfg := LoadConfig()

	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.ErrorLevel != guard.SeverityError {
		t.Errorf("ErrorLevel = %v, want error", cfg.ErrorLevel)
	}
}

func TestLoadConfigBadErrorLevel(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("error_level", "bogus")

	cfg := LoadConfig()

	if cfg.ErrorLevel != guard.SeverityWarning {
		t.Errorf("ErrorLevel = %v, want warning fallback", cfg.ErrorLevel)
	}
}
