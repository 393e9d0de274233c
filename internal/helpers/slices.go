package helpers

import (
	"fmt"

	"github.com/mlind/helpkit/internal/guard"
	"github.com/mlind/helpkit/internal/registry"
)

// Slices returns the slice-transform provider.
func Slices() registry.Provider {
	return registry.Provider{
		Name: "slices",
		Methods: map[string]registry.Func{
			"First": func(args ...interface{}) (interface{}, error) {
				s, err := oneSlice("First", args)
				if err != nil {
					return nil, err
				}
				return First(s), nil
			},
			"Last": func(args ...interface{}) (interface{}, error) {
				s, err := oneSlice("Last", args)
				if err != nil {
					return nil, err
				}
				return Last(s), nil
			},
			"Reverse": func(args ...interface{}) (interface{}, error) {
				s, err := oneSlice("Reverse", args)
				if err != nil {
					return nil, err
				}
				return Reverse(s), nil
			},
			"Unique": func(args ...interface{}) (interface{}, error) {
				s, err := oneSlice("Unique", args)
				if err != nil {
					return nil, err
				}
				return Unique(s), nil
			},
		},
	}
}

// First returns the first element, or nil for an empty slice. The empty
// case is reported as a recoverable notice.
func First(s []interface{}) interface{} {
	if len(s) == 0 {
		guard.Report(guard.SeverityNotice, "First: empty slice")
		return nil
	}
	return s[0]
}

// Last returns the last element, or nil for an empty slice.
func Last(s []interface{}) interface{} {
	if len(s) == 0 {
		guard.Report(guard.SeverityNotice, "Last: empty slice")
		return nil
	}
	return s[len(s)-1]
}

// Reverse returns a new slice with the elements in reverse order.
func Reverse(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Unique returns a new slice with later duplicates removed; element
// identity is by formatted value so unhashable elements still work.
func Unique(s []interface{}) []interface{} {
	seen := make(map[string]struct{}, len(s))
	out := make([]interface{}, 0, len(s))
	for _, v := range s {
		key := fmt.Sprintf("%T:%v", v, v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
