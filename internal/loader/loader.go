// Package loader reads an input file into a table.Table.
package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gyeh/csvfaq/internal/table"
)

// Loader produces a Table from a file path. Implementations never return a
// partial table: on error the table is nil.
type Loader interface {
	Load(ctx context.Context, path string) (*table.Table, error)
}

// Options configures the loaders returned by ForPath.
type Options struct {
	// Progress shows a byte progress bar while a CSV file is read.
	Progress bool
}

// ForPath picks a loader by file extension: .parquet files use the declared
// Parquet schema, everything else is read as comma-delimited text.
func ForPath(path string, opts Options) Loader {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return Parquet{}
	}
	return CSV{Progress: opts.Progress}
}

// Auto dispatches each Load through ForPath.
type Auto struct {
	Options Options
}

func (a Auto) Load(ctx context.Context, path string) (*table.Table, error) {
	return ForPath(path, a.Options).Load(ctx, path)
}
