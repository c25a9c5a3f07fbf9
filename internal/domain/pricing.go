package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Prices are fixed-point integer cents; the hotels service speaks decimal
// strings with two-place precision.

// TotalPriceCents computes nights × nightly rate for the interval.
func TotalPriceCents(nightlyRateCents int64, span Interval) int64 {
	return int64(span.Nights()) * nightlyRateCents
}

// ParsePriceCents converts a decimal amount like "100.00" or "85.5" to cents.
func ParsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return units*100 + cents, nil
}

// FormatPrice renders cents as a two-place decimal string.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
