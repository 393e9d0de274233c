package helpers

import (
	"fmt"
	"time"

	"github.com/mlind/helpkit/internal/duration"
	"github.com/mlind/helpkit/internal/registry"
	"github.com/mlind/helpkit/internal/timestamp"
)

// DateTime returns the date/time provider hosting the duration and
// timestamp entry points.
func DateTime() registry.Provider {
	return registry.Provider{
		Name: "datetime",
		Methods: map[string]registry.Func{
			"ToSeconds": func(args ...interface{}) (interface{}, error) {
				s, err := oneString("ToSeconds", args)
				if err != nil {
					return nil, err
				}
				return duration.ToSeconds(s), nil
			},
			"ToTimestamp": func(args ...interface{}) (interface{}, error) {
				if len(args) != 1 {
					return nil, fmt.Errorf("ToTimestamp expects 1 argument, got %d", len(args))
				}
				return timestamp.ToTimestamp(args[0])
			},
			"Now": func(args ...interface{}) (interface{}, error) {
				if len(args) != 0 {
					return nil, fmt.Errorf("Now expects no arguments, got %d", len(args))
				}
				return time.Now().Unix(), nil
			},
		},
	}
}
