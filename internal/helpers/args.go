// Package helpers supplies the built-in provider bundles registered
// into the default facade: string transforms, slice transforms, and the
// date/time entry points, plus the pretty-dump used behind the debug
// flag.
package helpers

import "fmt"

func oneString(name string, args []interface{}) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	s, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("%s expects a string argument, got %T", name, args[0])
	}
	return s, nil
}

func oneSlice(name string, args []interface{}) ([]interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	s, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s expects a slice argument, got %T", name, args[0])
	}
	return s, nil
}
