package helpers

import (
	"strings"
	"testing"

	"github.com/mlind/helpkit/internal/registry"
)

func TestProviderManifests(t *testing.T) {
	tests := []struct {
		provider registry.Provider
		methods  []string
		name     string
	}{
		{Strings(), []string{"Slugify", "CamelCase", "SnakeCase", "Pluralize", "Truncate"}, "strings"},
		{Slices(), []string{"First", "Last", "Reverse", "Unique"}, "slices"},
		{DateTime(), []string{"ToSeconds", "ToTimestamp", "Now"}, "datetime"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.provider.Name != test.name {
				t.Errorf("provider name = %q, want %q", test.provider.Name, test.name)
			}
			for _, method := range test.methods {
				if _, ok := test.provider.Methods[method]; !ok {
					t.Errorf("provider %s missing method %s", test.name, method)
				}
			}
			if len(test.provider.Methods) != len(test.methods) {
				t.Errorf("provider %s lists %d methods, want %d", test.name, len(test.provider.Methods), len(test.methods))
			}
		})
	}
}

func TestDateTimeProviderDispatch(t *testing.T) {
	p := DateTime()

	result, err := p.Methods["ToSeconds"]("3 hours 4 minutes 10 seconds")
	if err != nil {
		t.Fatalf("ToSeconds helper returned error: %v", err)
	}
	if result != 11050 {
		t.Errorf("ToSeconds helper = %v, want 11050", result)
	}

	result, err = p.Methods["ToTimestamp"](1700000000)
	if err != nil {
		t.Fatalf("ToTimestamp helper returned error: %v", err)
	}
	if result != int64(1700000000) {
		t.Errorf("ToTimestamp helper = %v, want 1700000000", result)
	}

	if _, err := p.Methods["ToSeconds"](42); err == nil {
		t.Error("ToSeconds helper accepted a non-string argument")
	}
	if _, err := p.Methods["Now"]("extra"); err == nil {
		t.Error("Now helper accepted unexpected arguments")
	}
}

func TestDump(t *testing.T) {
	out := Dump(map[string]int{"a": 1})
	if !strings.Contains(out, "a") || !strings.Contains(out, "1") {
		t.Errorf("Dump output %q missing map contents", out)
	}
}
