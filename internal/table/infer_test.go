package table

import (
	"testing"
	"time"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Type
	}{
		{"ints", []string{"1", "-2", "300"}, Int},
		{"ints with nulls", []string{"", "7", ""}, Int},
		{"int and double widen", []string{"1", "2.5"}, Double},
		{"doubles", []string{"1e3", ".5"}, Double},
		{"bools", []string{"true", "FALSE", "True"}, Bool},
		{"timestamps", []string{"2017-01-02", "2017-01-03 10:11:12"}, Timestamp},
		{"strings", []string{"Brooklyn", "Queens"}, String},
		{"int then string", []string{"10001", "N/A"}, String},
		{"bool and int conflict", []string{"true", "1"}, String},
		{"all null", []string{"", ""}, String},
		{"empty", nil, String},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Infer(tt.values); got != tt.want {
				t.Errorf("Infer(%q) = %s, want %s", tt.values, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	if v := Convert("", Int); v != nil {
		t.Errorf("empty should be null, got %v", v)
	}
	if v := Convert("42", Int); v != int64(42) {
		t.Errorf("Convert int = %#v", v)
	}
	if v := Convert("4", Double); v != float64(4) {
		t.Errorf("Convert double = %#v", v)
	}
	if v := Convert("FALSE", Bool); v != false {
		t.Errorf("Convert bool = %#v", v)
	}
	ts, ok := Convert("2020-02-29", Timestamp).(time.Time)
	if !ok || ts.Year() != 2020 || ts.Month() != time.February || ts.Day() != 29 {
		t.Errorf("Convert timestamp = %v", ts)
	}
	if v := Convert("abc", Int); v != "abc" {
		t.Errorf("unparseable value should stay raw, got %#v", v)
	}
}

func TestTableColumn(t *testing.T) {
	tbl := &Table{
		Columns: []Column{{Name: "a", Type: Int}, {Name: "b", Type: String}},
		Rows:    []Row{{int64(1), "x"}, {int64(2)}},
	}
	if got := tbl.Names(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Names = %v", got)
	}
	col, values, err := tbl.Column("b")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col.Type != String || values[0] != "x" || values[1] != nil {
		t.Errorf("Column(b) = %v %v", col, values)
	}
	if _, _, err := tbl.Column("B"); err == nil {
		t.Error("expected case-sensitive lookup to fail")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{int64(10001), "10001"},
		{10001.0, "10001"},
		{2.5, "2.5"},
		{true, "true"},
		{time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), "2021-03-04"},
		{time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC), "2021-03-04T05:06:07Z"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
