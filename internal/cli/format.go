// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats an integer with thousands separators.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatMoney formats a monetary amount with the configured currency symbol.
// Whole amounts drop the cents; everything keeps thousands separators.
// e.g., 50000 -> "$50,000", 1234.5 -> "$1,234.50"
func FormatMoney(symbol string, v float64) string {
	if symbol == "" {
		symbol = "$"
	}
	whole := math.Trunc(v)
	if v == whole {
		return symbol + FormatNumber(int64(whole))
	}
	cents := math.Abs(v - whole)
	return fmt.Sprintf("%s%s.%02d", symbol, FormatNumber(int64(whole)), int(math.Round(cents*100)))
}

// FormatPercent formats a 0.0-1.0 fraction as a percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
