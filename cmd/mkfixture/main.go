// mkfixture creates a small representative CSV fixture from a larger CSV or Parquet file.
// Rows with at least one null are kept first (up to a quarter of the budget), then complete rows.
// Usage: go run ./cmd/mkfixture --in testdata/311-all.csv --out testdata/311-small.csv --rows 200
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gyeh/csvfaq/internal/loader"
	"github.com/gyeh/csvfaq/internal/logging"
	"github.com/gyeh/csvfaq/internal/table"
)

func main() {
	in := flag.String("in", "testdata/311-all.csv", "input csv or parquet")
	out := flag.String("out", "testdata/311-small.csv", "output csv")
	maxRows := flag.Int("rows", 200, "max rows to output")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logging.Setup("text", *logLevel)

	start := time.Now()
	t, err := loader.ForPath(*in, loader.Options{Progress: true}).Load(context.Background(), *in)
	if err != nil {
		log.Fatal().Err(err).Msg("load input")
	}

	log.Info().
		Str("file", *in).
		Int("rows", len(t.Rows)).
		Int("columns", len(t.Columns)).
		Dur("duration", time.Since(start)).
		Msg("input loaded")

	if *checkOnly {
		fmt.Printf("Rows: %d\n", len(t.Rows))
		for _, c := range t.Columns {
			fmt.Printf("  %-30s %s\n", c.Name, c.Type)
		}
		return
	}

	// Bucket rows by whether they carry nulls.
	type bucket struct {
		name string
		rows []table.Row
		want int
	}
	withNulls := &bucket{name: "with_nulls", want: *maxRows / 4}
	complete := &bucket{name: "complete", want: *maxRows}
	for _, row := range t.Rows {
		if hasNull(row) {
			if len(withNulls.rows) < withNulls.want {
				withNulls.rows = append(withNulls.rows, row)
			}
			continue
		}
		if len(complete.rows) < complete.want {
			complete.rows = append(complete.rows, row)
		}
	}

	var selected []table.Row
	for _, b := range []*bucket{withNulls, complete} {
		for _, row := range b.rows {
			if len(selected) >= *maxRows {
				break
			}
			selected = append(selected, row)
		}
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("create output")
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	if err := w.Write(t.Names()); err != nil {
		log.Fatal().Err(err).Msg("write header")
	}
	rec := make([]string, len(t.Columns))
	for _, row := range selected {
		for i := range rec {
			rec[i] = table.Format(row[i])
		}
		if err := w.Write(rec); err != nil {
			log.Fatal().Err(err).Msg("write")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal().Err(err).Msg("flush")
	}

	fmt.Printf("Scanned %d rows\n", len(t.Rows))
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	fmt.Printf("  %-10s %d\n", withNulls.name, min(len(withNulls.rows), len(selected)))
	fmt.Printf("  %-10s %d\n", complete.name, len(selected)-min(len(withNulls.rows), len(selected)))
}

func hasNull(row table.Row) bool {
	for _, v := range row {
		if v == nil {
			return true
		}
	}
	return false
}
