package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseList splits a comma-separated query parameter into trimmed,
// non-empty values.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ParseFloat parses a numeric query parameter
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Round2 rounds to 2 decimal places for display values
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
