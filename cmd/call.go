package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlind/helpkit/internal/guard"
)

var callCmd = &cobra.Command{
	Use:   "call <method> [args...]",
	Short: "Invoke a registered helper method by name",
	Long: `Resolves a helper method through the registry (case-insensitive) and
invokes it with the given string arguments. The invocation runs under
the execution guard: runtime failures are routed to the failure handler
instead of crashing the process.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(_ *cobra.Command, args []string) error {
	cfg := GetConfig()
	kit := GetKit()

	name := args[0]
	callArgs := make([]interface{}, 0, len(args)-1)
	for _, a := range args[1:] {
		callArgs = append(callArgs, a)
	}

	var callErr error
	kit.SetExceptionHandler(func(f *guard.Failure) interface{} {
		callErr = f
		return nil
	})

	result := kit.Run(func(a ...interface{}) (interface{}, error) {
		return kit.Call(name, a...)
	}, callArgs...)

	if callErr != nil {
		return fmt.Errorf("call %s failed: %w", name, callErr)
	}

	if cfg.JSON {
		fmt.Printf(`{"method":%q,"result":"%v"}%s`, name, result, "\n")
	} else {
		fmt.Println(result)
	}

	kit.Dump(result)
	return nil
}
