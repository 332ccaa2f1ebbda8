// Package analyze defines the column-level analysis contract.
//
// No checks are built in. Base type checking, semantic type checking,
// null/invalid value detection and outlier detection are the intended
// implementations; each plugs in as an Analyzer.
package analyze

import (
	"context"

	"github.com/gyeh/csvfaq/internal/table"
)

// Check is the outcome of one named check over a column's values.
type Check struct {
	Name   string
	Passed int64
	Failed int64
	Detail string
}

// Report collects the checks run against one column.
type Report struct {
	Column string
	Type   table.Type
	Checks []Check
}

// Analyzer inspects a single column of a table.
type Analyzer interface {
	Analyze(ctx context.Context, column string, t *table.Table) (*Report, error)
}

// Func adapts a function to the Analyzer interface.
type Func func(ctx context.Context, column string, t *table.Table) (*Report, error)

func (f Func) Analyze(ctx context.Context, column string, t *table.Table) (*Report, error) {
	return f(ctx, column, t)
}

// Chain runs each analyzer in order and merges their checks into a single
// report per column. A nil report from a member contributes no checks.
type Chain []Analyzer

func (c Chain) Analyze(ctx context.Context, column string, t *table.Table) (*Report, error) {
	col, _, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	merged := &Report{Column: column, Type: col.Type}
	for _, a := range c {
		r, err := a.Analyze(ctx, column, t)
		if err != nil {
			return nil, err
		}
		if r != nil {
			merged.Checks = append(merged.Checks, r.Checks...)
		}
	}
	return merged, nil
}
