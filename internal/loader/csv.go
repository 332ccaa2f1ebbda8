package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gyeh/csvfaq/internal/source"
	"github.com/gyeh/csvfaq/internal/table"
)

// cancelCheckEvery is how many records are read between context checks.
const cancelCheckEvery = 4096

// CSV loads comma-delimited text with a header row. Column types are
// inferred from the data. Short records are padded with nulls and long
// records are truncated to the header width. Empty cells are null.
type CSV struct {
	Progress bool
}

func (l CSV) Load(ctx context.Context, path string) (*table.Table, error) {
	in, err := source.Open(path, source.Options{Progress: l.Progress})
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return &table.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	width := len(header)

	var records [][]string
	for n := 0; ; n++ {
		if n%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record %d: %w", n+1, err)
		}
		records = append(records, fit(rec, width))
	}

	t := &table.Table{
		Columns: make([]table.Column, width),
		Rows:    make([]table.Row, len(records)),
	}
	column := make([]string, len(records))
	for j, name := range header {
		for i, rec := range records {
			column[i] = rec[j]
		}
		t.Columns[j] = table.Column{Name: columnName(name, j), Type: table.Infer(column)}
	}
	for i, rec := range records {
		row := make(table.Row, width)
		for j, raw := range rec {
			row[j] = table.Convert(raw, t.Columns[j].Type)
		}
		t.Rows[i] = row
	}
	return t, nil
}

// fit pads or truncates rec to width fields.
func fit(rec []string, width int) []string {
	if len(rec) == width {
		return rec
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}

// columnName trims a header cell; blank headers become _c<index>.
func columnName(raw string, idx int) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return fmt.Sprintf("_c%d", idx)
	}
	return name
}
