package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlind/helpkit/internal/timestamp"
)

var timestampCmd = &cobra.Command{
	Use:   "timestamp <value>",
	Short: "Normalize a time representation into a Unix timestamp",
	Long: `Converts a number, a numeric string, or a free-text date into a
canonical Unix-epoch second count. Free text is handed to the general
date parser; text it cannot resolve is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTimestamp,
}

func init() {
	rootCmd.AddCommand(timestampCmd)
}

func runTimestamp(_ *cobra.Command, args []string) error {
	cfg := GetConfig()
	value := strings.Join(args, " ")

	ts, err := timestamp.ToTimestamp(value)
	if err != nil {
		return fmt.Errorf("failed to normalize %q: %w", value, err)
	}

	if cfg.JSON {
		fmt.Printf(`{"input":%q,"timestamp":%d}%s`, value, ts, "\n")
	} else {
		fmt.Println(ts)
	}
	return nil
}
