package duration

import "testing"

func TestToSeconds(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		name     string
	}{
		{"3 hours 4 minutes 10 seconds", 11050, "long form with all units"},
		{"5min", 300, "fused short unit"},
		{"4.5h", 16200, "fractional hours"},
		{"12:30:00", 45000, "HH:MM:SS clock form"},
		{"30:15", 1815, "MM:SS clock form"},
		{"2h 2h", 7200, "repeated unit keeps first occurrence"},
		{"0h 2h", 7200, "zero first occurrence loses the slot"},
		{"garbage", 0, "non-duration text"},
		{"5 bananas", 0, "unknown unit word"},
		{"", 0, "empty string"},
		{"1h 30min 10s", 5410, "mixed unit spellings"},
		{"2 hours", 7200, "number and unit separated by space"},
		{"3 hours, 4 minutes, 10 seconds", 11050, "punctuation treated as separators"},
		{"7 MINUTES", 420, "case folded before parsing"},
		{"1.5m", 90, "fractional minutes"},
		{"10 sec", 10, "abbreviated seconds"},
		{"90", 0, "bare number has no unit"},
		{"1h 2x", 0, "one bad chunk poisons the parse"},
		{"2mi", 0, "unit alphabet without a known unit"},
		{"1 hour\t30 minutes", 5400, "tab separator"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ToSeconds(test.input)
			if result != test.expected {
				t.Errorf("ToSeconds(%q) = %d, want %d", test.input, result, test.expected)
			}
		})
	}
}

func TestToSecondsFractionalTruncation(t *testing.T) {
	// Fractions accumulate as floats and only the final result is
	// truncated.
	result := ToSeconds("1.5h 0.5m")
	expected := int(1.5*3600 + 0.5*60)
	if result != expected {
		t.Errorf("ToSeconds(\"1.5h 0.5m\") = %d, want %d", result, expected)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		name     string
	}{
		{"3 hours", "3hours", "number fused with unit word"},
		{"3 - hours", "3hours", "separator run collapses before fusion"},
		{"5 bananas", "5 bananas", "non-unit letters block fusion"},
		{"2 Hours", "2hours", "case folded"},
		{"  5min  ", "5min", "surrounding whitespace trimmed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := normalize(test.input)
			if result != test.expected {
				t.Errorf("normalize(%q) = %q, want %q", test.input, result, test.expected)
			}
		})
	}
}
