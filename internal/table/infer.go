package table

import (
	"strconv"
	"strings"

	"github.com/gyeh/csvfaq/internal/normalize"
)

// Infer returns the narrowest type that every non-empty value parses as.
// Candidates are tried in order int, double, bool, timestamp. Int and double
// widen to double; any other disagreement falls back to string. A column with
// no non-empty values is a string column.
func Infer(values []string) Type {
	seen := false
	var t Type
	for _, v := range values {
		if v == "" {
			continue
		}
		vt := typeOf(v)
		if !seen {
			t, seen = vt, true
			continue
		}
		t = widen(t, vt)
		if t == String {
			return String
		}
	}
	if !seen {
		return String
	}
	return t
}

func typeOf(v string) Type {
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return Int
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return Double
	}
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return Bool
	}
	if normalize.ParseDate(v) != nil {
		return Timestamp
	}
	return String
}

func widen(a, b Type) Type {
	if a == b {
		return a
	}
	if (a == Int && b == Double) || (a == Double && b == Int) {
		return Double
	}
	return String
}

// Convert parses raw as t. Empty input is null. Input that does not parse
// as t is kept as its raw string.
func Convert(raw string, t Type) any {
	if raw == "" {
		return nil
	}
	switch t {
	case Int:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case Double:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case Bool:
		if strings.EqualFold(raw, "true") {
			return true
		}
		if strings.EqualFold(raw, "false") {
			return false
		}
	case Timestamp:
		if ts := normalize.ParseDate(raw); ts != nil {
			return *ts
		}
	}
	return raw
}
