// Package table holds the in-memory tabular structure produced by a loader.
package table

import (
	"fmt"
	"strconv"
	"time"
)

// Type is the value type of a column, either inferred from text or declared
// by a columnar schema.
type Type int

const (
	String Type = iota
	Int
	Double
	Bool
	Timestamp
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case Timestamp:
		return "timestamp"
	default:
		return "string"
	}
}

// Column is a named, typed column.
type Column struct {
	Name string
	Type Type
}

// Row is one record. Values are positional with Table.Columns; nil is null.
type Row []any

// Table is an ordered set of columns and rows. A Table is not modified after
// a loader returns it.
type Table struct {
	Columns []Column
	Rows    []Row
}

// Names returns the column names in header order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
// Matching is exact and case-sensitive.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column and its values in row order.
func (t *Table) Column(name string) (Column, []any, error) {
	idx := t.Index(name)
	if idx < 0 {
		return Column{}, nil, fmt.Errorf("unknown column %q", name)
	}
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return t.Columns[idx], values, nil
}

// Format renders a cell value as text. Null renders as the empty string.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(x)
	}
}
