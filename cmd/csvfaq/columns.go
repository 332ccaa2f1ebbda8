package main

import (
	"io"

	"github.com/gyeh/csvfaq/internal/exitcode"
	"github.com/gyeh/csvfaq/internal/header"
	"github.com/gyeh/csvfaq/internal/loader"
	"github.com/gyeh/csvfaq/internal/report"
)

// schemaNamer is implemented by loaders that can list columns from file
// metadata instead of a header line.
type schemaNamer interface {
	Names(path string) ([]string, error)
}

// listColumns prints the column names of path as a grid. Text files are
// read up to their first line only.
func (a *app) listColumns(w io.Writer, path string) {
	read := header.Read
	if n, ok := loader.ForPath(path, loader.Options{}).(schemaNamer); ok {
		read = n.Names
	}
	names, err := read(path)
	if err != nil {
		if a.fileAccessFailed(w, err) {
			return
		}
		a.log.Error().Err(err).Str("file", path).Msg("failed to read header")
		a.code = exitcode.LoadError
		return
	}

	if err := report.Columns(w, progName, path, names, a.cfg.GridWidth, a.cfg.Wildcard); err != nil {
		a.log.Error().Err(err).Msg("failed to write column listing")
		a.code = exitcode.LoadError
		return
	}
	a.code = exitcode.Success
}
