package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/csvfaq/internal/source"
	"github.com/gyeh/csvfaq/internal/table"
)

type buildingRow struct {
	Address   string  `parquet:"address"`
	YearBuilt int64   `parquet:"year_built"`
	Floors    float64 `parquet:"floors"`
	Landmark  bool    `parquet:"landmark"`
	Zip       *string `parquet:"zip,optional"`
}

func writeParquet(t *testing.T, rows []buildingRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildings.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w := parquet.NewGenericWriter[buildingRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func strPtr(s string) *string { return &s }

func TestParquetLoad(t *testing.T) {
	path := writeParquet(t, []buildingRow{
		{Address: "1 MAIN ST", YearBuilt: 1931, Floors: 6, Landmark: true, Zip: strPtr("10001")},
		{Address: "2 ELM AVE", YearBuilt: 1965, Floors: 2.5, Landmark: false},
	})

	tbl, err := Parquet{}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(tbl.Rows))
	}

	wantTypes := map[string]table.Type{
		"address":    table.String,
		"year_built": table.Int,
		"floors":     table.Double,
		"landmark":   table.Bool,
		"zip":        table.String,
	}
	for name, typ := range wantTypes {
		idx := tbl.Index(name)
		if idx < 0 {
			t.Fatalf("missing column %q in %v", name, tbl.Names())
		}
		if tbl.Columns[idx].Type != typ {
			t.Errorf("column %q type = %s, want %s", name, tbl.Columns[idx].Type, typ)
		}
	}

	_, years, _ := tbl.Column("year_built")
	if years[0] != int64(1931) || years[1] != int64(1965) {
		t.Errorf("year_built = %v", years)
	}
	_, zips, _ := tbl.Column("zip")
	if zips[0] != "10001" || zips[1] != nil {
		t.Errorf("zip = %#v", zips)
	}
	_, floors, _ := tbl.Column("floors")
	if floors[1] != 2.5 {
		t.Errorf("floors = %v", floors)
	}
	_, landmark, _ := tbl.Column("landmark")
	if landmark[0] != true || landmark[1] != false {
		t.Errorf("landmark = %v", landmark)
	}
}

func TestParquetNames(t *testing.T) {
	path := writeParquet(t, []buildingRow{{Address: "x"}})
	names, err := Parquet{}.Names(path)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 5 {
		t.Errorf("names = %v", names)
	}
}

func TestParquetLoadMissingFile(t *testing.T) {
	tbl, err := Parquet{}.Load(context.Background(), filepath.Join(t.TempDir(), "nope.parquet"))
	var fae *source.FileAccessError
	if tbl != nil || !errors.As(err, &fae) {
		t.Fatalf("expected FileAccessError and no table, got %v", err)
	}
}

func TestParquetLoadNotParquet(t *testing.T) {
	path := writeFile(t, "fake.parquet", "a,b\n1,2\n")
	if _, err := (Parquet{}).Load(context.Background(), path); err == nil {
		t.Fatal("expected error for non-parquet content")
	}
}

func TestAutoDispatch(t *testing.T) {
	path := writeParquet(t, []buildingRow{{Address: "x", YearBuilt: 1900}})
	tbl, err := Auto{}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Index("year_built") < 0 {
		t.Errorf("Auto did not read parquet schema: %v", tbl.Names())
	}
}
