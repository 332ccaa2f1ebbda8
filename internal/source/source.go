// Package source opens input files for reading. It transparently
// decompresses .gz files, skips a leading UTF-8 byte order mark, and can
// report read progress on stderr.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/schollz/progressbar/v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// AccessKind classifies why a file could not be opened.
type AccessKind int

const (
	NotFound AccessKind = iota
	PermissionDenied
)

// FileAccessError reports an input file that does not exist or cannot be read.
type FileAccessError struct {
	Path string
	Kind AccessKind
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Kind == PermissionDenied {
		return fmt.Sprintf("no read permission on file %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("could not find file %s: %s", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Options controls how Open wraps the file.
type Options struct {
	// Progress shows a byte progress bar on stderr while the file is read.
	Progress bool
}

// File is an open input. Reads are buffered; Close releases every layer.
type File struct {
	*bufio.Reader
	closers []io.Closer
	bar     *progressbar.ProgressBar
}

// Open opens path for reading. Missing and unreadable files are reported as
// *FileAccessError; on any error nothing is left open.
func Open(path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Classify(path, err)
	}

	in := &File{closers: []io.Closer{f}}
	var r io.Reader = f

	if opts.Progress {
		var size int64 = -1
		if stat, err := f.Stat(); err == nil {
			size = stat.Size()
		}
		in.bar = progressbar.DefaultBytes(size, "reading "+filepath.Base(path))
		r = io.TeeReader(r, in.bar)
	}

	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := pgzip.NewReader(r)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("open gzip stream %s: %w", path, err)
		}
		in.closers = append(in.closers, zr)
		r = zr
	}

	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	in.Reader = br
	return in, nil
}

// Close closes the decompressor and the underlying file.
func (f *File) Close() error {
	var firstErr error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	if f.bar != nil {
		_ = f.bar.Finish()
		f.bar = nil
	}
	return firstErr
}

// Classify converts a missing-file or permission error from opening path
// into a *FileAccessError. Other errors are wrapped with the path.
func Classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &FileAccessError{Path: path, Kind: NotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &FileAccessError{Path: path, Kind: PermissionDenied, Err: err}
	}
	return fmt.Errorf("open %s: %w", path, err)
}
