package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/csvfaq/internal/source"
	"github.com/gyeh/csvfaq/internal/table"
)

const readBatchSize = 1024

// Parquet loads a flat Parquet file using its declared schema.
type Parquet struct{}

func (Parquet) Load(ctx context.Context, path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, source.Classify(path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	kinds, t, err := schemaColumns(pf.Schema())
	if err != nil {
		return nil, err
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	t.Rows = make([]table.Row, 0, pf.NumRows())
	buf := make([]parquet.Row, readBatchSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, readErr := reader.ReadRows(buf)
		for i := 0; i < n; i++ {
			row := make(table.Row, len(t.Columns))
			for _, v := range buf[i] {
				c := v.Column()
				if c < 0 || c >= len(row) || v.IsNull() {
					continue
				}
				row[c] = convertValue(v, kinds[c])
			}
			t.Rows = append(t.Rows, row)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return t, nil
}

// leafKind carries what convertValue needs beyond the table type.
type leafKind struct {
	typ  table.Type
	unit time.Duration // timestamp unit; zero for DATE (days)
}

func schemaColumns(schema *parquet.Schema) ([]leafKind, *table.Table, error) {
	fields := schema.Fields()
	kinds := make([]leafKind, len(fields))
	t := &table.Table{Columns: make([]table.Column, len(fields))}
	for i, field := range fields {
		if !field.Leaf() || field.Repeated() {
			return nil, nil, fmt.Errorf("column %q: nested and repeated columns are not supported", field.Name())
		}
		kinds[i] = kindOf(field.Type())
		t.Columns[i] = table.Column{Name: field.Name(), Type: kinds[i].typ}
	}
	return kinds, t, nil
}

func kindOf(typ parquet.Type) leafKind {
	lt := typ.LogicalType()
	switch typ.Kind() {
	case parquet.Boolean:
		return leafKind{typ: table.Bool}
	case parquet.Int32, parquet.Int64:
		if lt != nil && lt.Date != nil {
			return leafKind{typ: table.Timestamp}
		}
		if lt != nil && lt.Timestamp != nil {
			unit := time.Millisecond
			switch {
			case lt.Timestamp.Unit.Micros != nil:
				unit = time.Microsecond
			case lt.Timestamp.Unit.Nanos != nil:
				unit = time.Nanosecond
			}
			return leafKind{typ: table.Timestamp, unit: unit}
		}
		return leafKind{typ: table.Int}
	case parquet.Float, parquet.Double:
		return leafKind{typ: table.Double}
	default:
		return leafKind{typ: table.String}
	}
}

func convertValue(v parquet.Value, k leafKind) any {
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		if k.typ == table.Timestamp {
			return time.Unix(0, 0).UTC().AddDate(0, 0, int(v.Int32()))
		}
		return int64(v.Int32())
	case parquet.Int64:
		if k.typ == table.Timestamp {
			return time.Unix(0, v.Int64()*int64(k.unit)).UTC()
		}
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return string(v.ByteArray())
	}
}

// Names returns the column names declared in the file's schema without
// reading any rows.
func (Parquet) Names(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, source.Classify(path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	fields := pf.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}
	return names, nil
}
