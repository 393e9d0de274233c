package config

import (
	"github.com/spf13/viper"

	"github.com/mlind/helpkit/internal/guard"
)

type Config struct {
	Verbose    bool
	Debug      bool
	JSON       bool
	ErrorLevel guard.Severity
}

func LoadConfig() *Config {
	level, err := guard.ParseSeverity(viper.GetString("error_level"))
	if err != nil {
		level = guard.SeverityWarning
	}

	return &Config{
		Verbose:    viper.GetBool("verbose"),
		Debug:      viper.GetBool("debug"),
		JSON:       viper.GetBool("json"),
		ErrorLevel: level,
	}
}

func GetDefault() *Config {
	return &Config{
		ErrorLevel: guard.SeverityWarning,
	}
}
