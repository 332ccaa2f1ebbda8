// Package refset checks column values against a reference table, such as
// the set of ZIP codes belonging to one state.
package refset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gyeh/csvfaq/internal/analyze"
	"github.com/gyeh/csvfaq/internal/normalize"
	"github.com/gyeh/csvfaq/internal/source"
	"github.com/gyeh/csvfaq/internal/table"
)

// Set is a named collection of normalized reference values.
type Set struct {
	Name   string
	values map[string]struct{}
}

// New builds a Set from raw values.
func New(name string, values []string) *Set {
	s := &Set{Name: name, values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if n := normalize.NormalizeCode(v); n != "" {
			s.values[n] = struct{}{}
		}
	}
	return s
}

// Load reads the named column of a tab-separated file with a header row.
func Load(path, column, name string) (*Set, error) {
	in, err := source.Open(path, source.Options{})
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read reference header %s: %w", path, err)
	}
	idx := -1
	for i, h := range header {
		if h == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("reference %s has no column %q", path, column)
	}

	var values []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read reference %s: %w", path, err)
		}
		if idx < len(rec) {
			values = append(values, rec[idx])
		}
	}
	return New(name, values), nil
}

// Len returns the number of distinct reference values.
func (s *Set) Len() int {
	return len(s.values)
}

// Contains reports whether a cell value is in the set. Integer-valued
// numbers match regardless of representation ("10001", 10001, 10001.0).
func (s *Set) Contains(v any) bool {
	n := normalize.NormalizeCode(table.Format(v))
	if n == "" {
		return false
	}
	_, ok := s.values[n]
	return ok
}

// Checker validates columns against reference sets keyed by column name.
// Columns without a set get a report with no checks.
type Checker struct {
	Sets map[string]*Set
}

var _ analyze.Analyzer = Checker{}

func (c Checker) Analyze(ctx context.Context, column string, t *table.Table) (*analyze.Report, error) {
	col, values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	report := &analyze.Report{Column: column, Type: col.Type}

	set, ok := c.Sets[column]
	if !ok {
		return report, nil
	}

	check := analyze.Check{Name: "semantic:" + set.Name}
	for i, v := range values {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if v == nil {
			continue
		}
		if set.Contains(v) {
			check.Passed++
		} else {
			check.Failed++
		}
	}
	check.Detail = fmt.Sprintf("%d of %d non-null values found in %s",
		check.Passed, check.Passed+check.Failed, set.Name)
	report.Checks = append(report.Checks, check)
	return report, nil
}
