// Package duration parses free-form human-readable duration strings
// ("3 hours 4 minutes 10 seconds", "5min", "4.5h", "12:30:00") into a
// total second count.
package duration

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mmssPattern   = regexp.MustCompile(`^(\d+):(\d+)$`)
	hhmmssPattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)

	// Any run of characters outside the token alphabet becomes a single
	// space (input is lower-cased before this applies).
	separatorPattern = regexp.MustCompile(`[^a-z0-9.]+`)

	// Fuses "2 hours" into "2hours". The letter class is exactly the
	// alphabet needed to spell hour(s)/min(ute)(s)/sec(ond)(s); a chunk
	// containing any other letter never fuses and fails unit
	// classification below.
	fusionPattern = regexp.MustCompile(`(\d) ([cdehimnorstu]+)`)

	chunkPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-z]+)$`)
)

var unitSlots = map[string]int{
	"h": 0, "hr": 0, "hour": 0, "hours": 0,
	"m": 1, "min": 1, "mins": 1, "minute": 1, "minutes": 1,
	"s": 2, "sec": 2, "secs": 2, "second": 2, "seconds": 2,
}

// ToSeconds converts a duration string into a total number of seconds.
// It never fails: any input it cannot parse yields 0, and callers that
// need to tell "zero duration" from "unparseable" must pre-validate.
func ToSeconds(text string) int {
	// Clock forms short-circuit the token pipeline entirely.
	if m := hhmmssPattern.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		s, _ := strconv.Atoi(m[3])
		return h*3600 + min*60 + s
	}
	if m := mmssPattern.FindStringSubmatch(text); m != nil {
		min, _ := strconv.Atoi(m[1])
		s, _ := strconv.Atoi(m[2])
		return min*60 + s
	}

	normalized := normalize(text)
	if normalized == "" {
		return 0
	}

	// One slot per unit. A slot is claimed only while it still holds its
	// zero default, so the first occurrence of a unit wins and repeats
	// are dropped. A literal leading "0h" is indistinguishable from an
	// unset slot, so "0h 2h" yields 7200; this is long-standing behavior
	// that callers rely on.
	var slots [3]float64

	for _, chunk := range strings.Split(normalized, " ") {
		m := chunkPattern.FindStringSubmatch(chunk)
		if m == nil {
			return 0
		}
		slot, ok := unitSlots[m[2]]
		if !ok {
			return 0
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		if slots[slot] == 0 {
			slots[slot] = value
		}
	}

	// Fractional hour and minute contributions survive until this final
	// truncation, so "4.5h" is 16200.
	return int(slots[0]*3600 + slots[1]*60 + slots[2])
}

func normalize(text string) string {
	s := strings.ToLower(text)
	s = separatorPattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = fusionPattern.ReplaceAllString(s, "$1$2")
	return s
}
