// Package interval renders Postgres interval values ("[-]HH:MM:SS") as signed
// "+Xh Ym" display strings for the admin dashboard.
package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EmptyDisplay is returned for missing interval values. It carries no sign.
const EmptyDisplay = "0h 00m"

// ErrInvalidInterval is returned by Parse for values outside [-]H+:MM:SS.
var ErrInvalidInterval = errors.New("invalid interval")

var strictPattern = regexp.MustCompile(`^(-)?(\d+):([0-5]\d):([0-5]\d)$`)

// Format converts a database interval string into a signed duration string.
//
// The sign is taken from the presence of a '-' anywhere in the input. Values
// that do not split into at least two ':' segments are returned unchanged.
// The minute segment is used as written, never re-parsed.
func Format(raw string) string {
	if raw == "" {
		return EmptyDisplay
	}

	negative := strings.Contains(raw, "-")
	clean := strings.ReplaceAll(raw, "-", "")

	parts := strings.Split(clean, ":")
	if len(parts) < 2 {
		return raw
	}

	sign := "+"
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%sh %sm", sign, leadingInt(parts[0]), parts[1])
}

// FormatPtr formats a nullable column value. A nil pointer is treated as missing.
func FormatPtr(raw *string) string {
	if raw == nil {
		return EmptyDisplay
	}
	return Format(*raw)
}

// IsNegative reports whether the raw interval carries a '-' anywhere. Styling
// decisions use this check directly on the raw value, not on Format's output.
func IsNegative(raw string) bool {
	return strings.Contains(raw, "-")
}

// Parse strictly decodes an interval written as [-]H+:MM:SS.
func Parse(raw string) (time.Duration, error) {
	m := strictPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}

	hours, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// leadingInt parses the leading run of decimal digits after optional
// whitespace, dropping zero padding. Arbitrarily long digit runs are kept as
// text so large hour counts pass through untouched.
func leadingInt(s string) string {
	s = strings.TrimLeft(s, " \t\n\r")
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return "NaN"
	}

	digits := strings.TrimLeft(s[:end], "0")
	if digits == "" {
		return "0"
	}
	return digits
}
