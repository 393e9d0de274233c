package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var helpersFormat string

var helpersCmd = &cobra.Command{
	Use:   "helpers",
	Short: "List registered helper methods",
	Long:  `Lists every helper method currently registered, with its provider.`,
	RunE:  runHelpers,
}

func init() {
	helpersCmd.Flags().StringVar(&helpersFormat, "format", formatTable, "Output format (table|json)")
	rootCmd.AddCommand(helpersCmd)
}

func runHelpers(_ *cobra.Command, _ []string) error {
	cfg := GetConfig()
	kit := GetKit()

	entries := kit.Helpers()

	format := helpersFormat
	if cfg.JSON {
		format = formatJSON
	}

	if format == formatJSON {
		type helperInfo struct {
			Provider string `json:"provider"`
			Method   string `json:"method"`
		}
		infos := make([]helperInfo, 0, len(entries))
		for _, e := range entries {
			infos = append(infos, helperInfo{Provider: e.Provider, Method: e.Method})
		}
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal helpers: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tMETHOD")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Provider, e.Method)
	}
	return w.Flush()
}
