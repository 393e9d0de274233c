package helpers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mlind/helpkit/internal/guard"
	"github.com/mlind/helpkit/internal/registry"
)

var (
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
	wordBoundaries = regexp.MustCompile(`[\s_-]+`)
)

// Strings returns the string-transform provider.
func Strings() registry.Provider {
	return registry.Provider{
		Name: "strings",
		Methods: map[string]registry.Func{
			"Slugify": func(args ...interface{}) (interface{}, error) {
				s, err := oneString("Slugify", args)
				if err != nil {
					return nil, err
				}
				return Slugify(s), nil
			},
			"CamelCase": func(args ...interface{}) (interface{}, error) {
				s, err := oneString("CamelCase", args)
				if err != nil {
					return nil, err
				}
				return CamelCase(s), nil
			},
			"SnakeCase": func(args ...interface{}) (interface{}, error) {
				s, err := oneString("SnakeCase", args)
				if err != nil {
					return nil, err
				}
				return SnakeCase(s), nil
			},
			"Pluralize": func(args ...interface{}) (interface{}, error) {
				s, err := oneString("Pluralize", args)
				if err != nil {
					return nil, err
				}
				return Pluralize(s), nil
			},
			"Truncate": func(args ...interface{}) (interface{}, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("Truncate expects 2 arguments, got %d", len(args))
				}
				s, ok := args[0].(string)
				if !ok {
					return nil, fmt.Errorf("Truncate expects a string argument, got %T", args[0])
				}
				length, ok := args[1].(int)
				if !ok {
					return nil, fmt.Errorf("Truncate expects an int length, got %T", args[1])
				}
				return Truncate(s, length), nil
			},
		},
	}
}

// Slugify lowers the string and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(s string) string {
	slug := slugSeparators.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// CamelCase joins space-, underscore-, or hyphen-separated words with
// each word capitalized after the first.
func CamelCase(s string) string {
	words := wordBoundaries.Split(strings.TrimSpace(s), -1)
	var b strings.Builder
	first := true
	for _, word := range words {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(word))
			first = false
			continue
		}
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// SnakeCase converts camelCase or separated words to lower snake_case.
func SnakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r)
		}
	}
	return b.String()
}

// Pluralize applies the common English pluralization rules; it makes no
// attempt at irregular nouns beyond a small fixed set.
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	irregular := map[string]string{
		"person": "people",
		"child":  "children",
		"foot":   "feet",
		"tooth":  "teeth",
		"mouse":  "mice",
	}
	if plural, ok := irregular[strings.ToLower(s)]; ok {
		return plural
	}

	switch {
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "z"), strings.HasSuffix(s, "ch"),
		strings.HasSuffix(s, "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !isVowel(rune(s[len(s)-2])):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

// Truncate shortens s to at most length runes, appending an ellipsis
// when anything was cut. A negative length is reported as a recoverable
// fault and leaves the string untouched.
func Truncate(s string, length int) string {
	if length < 0 {
		guard.Report(guard.SeverityWarning, "Truncate: negative length %d", length)
		return s
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + "…"
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}
