package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlind/helpkit/internal/duration"
)

var secondsCmd = &cobra.Command{
	Use:   "seconds <duration>",
	Short: "Parse a human-readable duration into seconds",
	Long: `Parses a free-form duration string into a total second count.

Accepted forms include "3 hours 4 minutes 10 seconds", "5min", "4.5h",
"12:30:00" and "30:15". Unparseable input yields 0; this command never
fails on bad input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSeconds,
}

func init() {
	rootCmd.AddCommand(secondsCmd)
}

func runSeconds(_ *cobra.Command, args []string) error {
	cfg := GetConfig()
	text := strings.Join(args, " ")

	seconds := duration.ToSeconds(text)

	if cfg.JSON {
		fmt.Printf(`{"input":%q,"seconds":%d}%s`, text, seconds, "\n")
	} else {
		fmt.Println(seconds)
	}
	return nil
}
