// Package header reads the column names from the first line of a delimited
// file without loading the rest of it.
//
// Names are split on every comma. Quoted fields are not recognised, so a
// header such as `"City, State",Zip` yields three names here while the CSV
// loader sees two.
package header

import (
	"fmt"
	"io"
	"strings"

	"github.com/gyeh/csvfaq/internal/source"
)

// Read returns the trimmed, comma-separated names on the first line of path.
// An empty file yields no names. Missing or unreadable files are reported
// as *source.FileAccessError.
func Read(path string) ([]string, error) {
	in, err := source.Open(path, source.Options{})
	if err != nil {
		return nil, err
	}
	defer in.Close()

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header line of %s: %w", path, err)
	}
	return Split(line), nil
}

// Split breaks a header line on commas and trims whitespace around each name.
func Split(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}
	return names
}
