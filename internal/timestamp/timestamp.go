// Package timestamp normalizes heterogeneous time representations into
// a canonical Unix-epoch second count.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

// ErrInvalidTimeRepresentation is returned when a value cannot be
// resolved to a point in time.
var ErrInvalidTimeRepresentation = errors.New("invalid time representation")

// ToTimestamp converts a numeric value, a time.Time, or a free-text
// date string into Unix-epoch seconds. Numeric values are truncated to
// an integer; free text is handed to the general date parser.
func ToTimestamp(value interface{}) (int64, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Unix(), nil
	case *time.Time:
		return v.Unix(), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return fromString(v)
	default:
		return 0, fmt.Errorf("%w: unsupported value %v", ErrInvalidTimeRepresentation, value)
	}
}

func fromString(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)

	// Numeric text truncates like any other number.
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int64(f), nil
	}

	parser := dateparser.Parser{}
	cfg := &dateparser.Configuration{
		PreferredDateSource: dateparser.CurrentPeriod,
	}

	parsed, err := parser.Parse(cfg, trimmed)
	if err != nil || parsed.IsZero() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeRepresentation, s)
	}

	return parsed.Time.Unix(), nil
}
