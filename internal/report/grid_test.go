package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestGridRowCount(t *testing.T) {
	for n := 0; n <= 13; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("c%d", i)
		}
		lines := Grid(names, 4)
		want := (n + 3) / 4
		if len(lines) != want {
			t.Fatalf("n=%d: got %d rows, want %d", n, len(lines), want)
		}
		for i, line := range lines {
			cells := strings.Split(line, "\t")
			wantCells := 4
			if i == len(lines)-1 && n%4 != 0 {
				wantCells = n % 4
			}
			if len(cells) != wantCells {
				t.Errorf("n=%d row %d: got %d cells, want %d", n, i, len(cells), wantCells)
			}
		}
	}
}

func TestGridRaggedWidths(t *testing.T) {
	names := []string{"Name", "Age", "City", "Zip", "Date", "Score", "Notes"}
	got := Grid(names, 4)
	want := []string{
		"Name\tAge  \tCity \tZip",
		"Date\tScore\tNotes",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGridLastRowDoesNotWidenMissingColumns(t *testing.T) {
	got := Grid([]string{"a", "b", "c", "d", "a_very_long_name"}, 4)
	if got[0] != "a               \tb\tc\td" {
		t.Errorf("row 0 = %q", got[0])
	}
	if got[1] != "a_very_long_name" {
		t.Errorf("row 1 = %q", got[1])
	}
}

func TestGridCountsRunes(t *testing.T) {
	got := Grid([]string{"Größe", "x", "Id", "y"}, 2)
	if got[1] != "Id   \ty" {
		t.Errorf("row 1 = %q, want rune-based padding", got[1])
	}
}

func TestColumns(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"Name", "Age", "City", "Zip", "Date", "Score", "Notes"}
	if err := Columns(&buf, "csvfaq", "data.csv", names, 4, ":all"); err != nil {
		t.Fatalf("Columns: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		title + "\n" + strings.Repeat("-", len(title)) + "\n",
		"Name\tAge  \tCity \tZip\nDate\tScore\tNotes\n",
		"\t$ csvfaq data.csv 'Name'\n",
		"\t$ csvfaq data.csv :all\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColumnsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Columns(&buf, "csvfaq", "empty.csv", nil, 4, ":all"); err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if !strings.Contains(buf.String(), "(no columns found)") {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if strings.Contains(buf.String(), "$ csvfaq") {
		t.Errorf("examples printed for empty header: %q", buf.String())
	}
}
