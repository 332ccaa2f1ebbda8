// Package report formats the column listing shown when a file is given
// without any column names.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the number of names per grid row.
const DefaultWidth = 4

// Grid lays names out in rows of width cells. Each grid column is padded to
// the longest name at that index; the last row may be shorter and only
// contributes to the columns it fills. Cells within a row are tab-separated.
func Grid(names []string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	var rows [][]string
	for i := 0; i < len(names); i += width {
		end := i + width
		if end > len(names) {
			end = len(names)
		}
		rows = append(rows, names[i:end])
	}

	widths := make([]int, width)
	for _, row := range rows {
		for j, name := range row {
			if n := utf8.RuneCountInString(name); n > widths[j] {
				widths[j] = n
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, name := range row {
			cells[j] = fmt.Sprintf("%-*s", widths[j], name)
		}
		lines[i] = strings.Join(cells, "\t")
	}
	return lines
}

const title = "Input file contained the following columns:"

// Columns writes the column grid for path followed by two example
// invocations of prog: one naming the first column, one using wildcard.
func Columns(w io.Writer, prog, path string, names []string, width int, wildcard string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))

	if len(names) == 0 {
		b.WriteString("(no columns found)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, line := range Grid(names, width) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nHence, you can now run something like:\n\n")
	fmt.Fprintf(&b, "\t$ %s %s '%s'\n\n", prog, path, names[0])
	fmt.Fprintf(&b, "or, to run analysis on all columns:\n\n")
	fmt.Fprintf(&b, "\t$ %s %s %s\n\n", prog, path, wildcard)

	_, err := io.WriteString(w, b.String())
	return err
}
