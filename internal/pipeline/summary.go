package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/gyeh/csvfaq/internal/analyze"
)

// Summary captures the outcome of a single pipeline run.
type Summary struct {
	RunID    uuid.UUID
	FilePath string
	Rows     int
	Columns  []string
	Valid    []string
	Invalid  []string
	Reports  []analyze.Report
	Duration time.Duration
}

// WriteReports renders one table row per check, or a single row for a
// column that had no checks.
func WriteReports(w io.Writer, reports []analyze.Report) error {
	if _, err := fmt.Fprintf(w, "\nAnalyzed %d column(s):\n", len(reports)); err != nil {
		return err
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Column", "Type", "Check", "Passed", "Failed"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for _, r := range reports {
		if len(r.Checks) == 0 {
			tw.Append([]string{r.Column, r.Type.String(), "-", "", ""})
			continue
		}
		for _, c := range r.Checks {
			tw.Append([]string{
				r.Column,
				r.Type.String(),
				c.Name,
				strconv.FormatInt(c.Passed, 10),
				strconv.FormatInt(c.Failed, 10),
			})
		}
	}
	tw.Render()
	return nil
}
