// Package pipeline runs the load → select → analyze sequence for one file.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/csvfaq/internal/analyze"
	"github.com/gyeh/csvfaq/internal/loader"
	"github.com/gyeh/csvfaq/internal/normalize"
	"github.com/gyeh/csvfaq/internal/selector"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Options tunes a Pipeline.
type Options struct {
	// Wildcard is the token that selects every column. Defaults to selector.Wildcard.
	Wildcard string
}

// Pipeline holds the collaborators for a run. It keeps no state between runs.
type Pipeline struct {
	loader   loader.Loader
	analyzer analyze.Analyzer
	out      io.Writer
	log      zerolog.Logger
	wildcard string
}

// New wires a pipeline. A nil analyzer describes each selected column
// without running any checks.
func New(l loader.Loader, a analyze.Analyzer, out io.Writer, log zerolog.Logger, opts Options) *Pipeline {
	if a == nil {
		a = analyze.Chain{}
	}
	wildcard := opts.Wildcard
	if wildcard == "" {
		wildcard = selector.Wildcard
	}
	return &Pipeline{loader: l, analyzer: a, out: out, log: log, wildcard: wildcard}
}

// Run loads path, reconciles args against its columns and analyzes every
// valid column. Invalid names are reported on the pipeline's writer and do
// not fail the run.
func (p *Pipeline) Run(ctx context.Context, path string, args []string) (*Summary, error) {
	start := time.Now()
	runID := uuid.New()
	log := p.log.With().Str("run_id", runID.String()).Str("file", path).Logger()

	// Phase 1: Load
	fmt.Fprintln(p.out, "Reading input file...")
	t, err := p.loader.Load(ctx, path)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	log.Info().
		Int("columns", len(t.Columns)).
		Int("rows", len(t.Rows)).
		Dur("duration", time.Since(start)).
		Msg("load complete")

	summary := &Summary{
		RunID:    runID,
		FilePath: path,
		Rows:     len(t.Rows),
		Columns:  t.Names(),
	}
	if log.GetLevel() <= zerolog.DebugLevel {
		if sha, err := normalize.FileHash(path); err == nil {
			log.Debug().Str("sha256", sha).Msg("input hashed")
		}
	}

	// Phase 2: Select
	sel, err := selector.Reconcile(p.out, summary.Columns, args, p.wildcard)
	if err != nil {
		return nil, &PipelineError{Phase: "select", Err: err}
	}
	summary.Valid, summary.Invalid = sel.Valid, sel.Invalid
	log.Info().
		Strs("valid", sel.Valid).
		Strs("invalid", sel.Invalid).
		Msg("columns selected")

	// Phase 3: Analyze
	for _, column := range sel.Valid {
		report, err := p.analyzer.Analyze(ctx, column, t)
		if err != nil {
			return nil, &PipelineError{Phase: "analyze", Err: fmt.Errorf("column %q: %w", column, err)}
		}
		if report == nil {
			continue
		}
		summary.Reports = append(summary.Reports, *report)
		log.Debug().
			Str("column", column).
			Int("checks", len(report.Checks)).
			Msg("column analyzed")
	}

	if len(summary.Reports) > 0 {
		if err := WriteReports(p.out, summary.Reports); err != nil {
			return nil, &PipelineError{Phase: "report", Err: err}
		}
	}

	summary.Duration = time.Since(start)
	log.Info().
		Int("analyzed", len(summary.Reports)).
		Str("total_duration", summary.Duration.String()).
		Msg("analysis complete")
	return summary, nil
}
