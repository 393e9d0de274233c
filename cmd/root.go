package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlind/helpkit/internal/config"
	"github.com/mlind/helpkit/internal/facade"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "helpkit",
	Short: "helpkit - time and helper-dispatch utility CLI",
	Long: `helpkit normalizes heterogeneous time representations and parses
free-form duration strings, and exposes a registry of helper methods
behind one dispatch facade.

Features:
• Parse human-readable durations ("3 hours 4 minutes", "4.5h", "12:30:00")
• Normalize numbers, dates, and free-text into Unix timestamps
• Call registered helper methods by name with collision-safe registration
• Guarded execution that routes runtime failures to a single handler

Use 'helpkit <command> --help' for detailed command information.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initConfig()
		setupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./helpkit.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "debug output")
	rootCmd.PersistentFlags().Bool("json", false, "JSON output format")
	rootCmd.PersistentFlags().String("error-level", "warning", "minimum severity promoted to a failure (notice|warning|error)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("error_level", rootCmd.PersistentFlags().Lookup("error-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("helpkit")
	}

	viper.SetDefault("error_level", "warning")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configNotFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &configNotFoundErr) {
			// Config file not found - only warn if explicitly specified
			if cfgFile != "" {
				logrus.WithError(err).Warn("Specified config file not found")
			}
		} else {
			if cfgFile != "" {
				logrus.WithError(err).Warn("Error reading specified config file")
			}
		}
	}

	cfg = config.LoadConfig()
}

func setupLogging() {
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if cfg.Verbose {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
}

func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.LoadConfig()
	}
	return cfg
}

// GetKit returns the process-wide facade configured from the loaded
// config.
func GetKit() *facade.Kit {
	kit := facade.Default()
	c := GetConfig()
	kit.SetDebug(c.Debug)
	kit.SetErrorLevel(c.ErrorLevel)
	return kit
}
