// Package selector reconciles requested column names against the columns a
// table actually has.
package selector

import (
	"fmt"
	"io"
)

// Wildcard is the default token that selects every column.
const Wildcard = ":all"

// Result partitions a column request. Valid and Invalid never share a name.
type Result struct {
	// Valid lists requested names present in the table, in table order.
	Valid []string
	// Invalid lists requested names absent from the table, in request order.
	Invalid []string
}

// Select matches args against columns by exact, case-sensitive name. If the
// wildcard token appears anywhere in args, every column is valid and no
// other argument is considered. An empty wildcard falls back to Wildcard.
func Select(columns, args []string, wildcard string) Result {
	if wildcard == "" {
		wildcard = Wildcard
	}

	requested := make(map[string]bool, len(args))
	for _, a := range args {
		if a == wildcard {
			all := make([]string, len(columns))
			copy(all, columns)
			return Result{Valid: all}
		}
		requested[a] = true
	}

	var res Result
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		if present[c] {
			continue
		}
		present[c] = true
		if requested[c] {
			res.Valid = append(res.Valid, c)
		}
	}

	reported := make(map[string]bool)
	for _, a := range args {
		if present[a] || reported[a] {
			continue
		}
		reported[a] = true
		res.Invalid = append(res.Invalid, a)
	}
	return res
}

// Reconcile runs Select and writes one line to w for each invalid name.
func Reconcile(w io.Writer, columns, args []string, wildcard string) (Result, error) {
	res := Select(columns, args, wildcard)
	for _, name := range res.Invalid {
		if _, err := fmt.Fprintf(w, "`%s` is not a valid column --- skipping.\n", name); err != nil {
			return res, err
		}
	}
	return res, nil
}
