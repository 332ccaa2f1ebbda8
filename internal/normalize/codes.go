package normalize

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeCode trims whitespace and reduces integer-valued numbers to their
// plain digits, so "10001", " 10001 " and "10001.0" compare equal.
// Non-numeric input is returned trimmed.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strings.TrimLeft(s, "+")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
