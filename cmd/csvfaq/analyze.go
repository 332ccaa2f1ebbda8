package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/gyeh/csvfaq/internal/analyze"
	"github.com/gyeh/csvfaq/internal/exitcode"
	"github.com/gyeh/csvfaq/internal/loader"
	"github.com/gyeh/csvfaq/internal/pipeline"
	"github.com/gyeh/csvfaq/internal/refset"
)

// analyze runs the full pipeline over the requested columns of path.
func (a *app) analyze(cmd *cobra.Command, w io.Writer, path string, columns []string) {
	analyzer, err := a.buildAnalyzer()
	if err != nil {
		a.log.Error().Err(err).Msg("failed to load reference sets")
		a.code = exitcode.UsageError
		return
	}

	p := pipeline.New(
		loader.Auto{Options: loader.Options{Progress: a.cfg.Progress}},
		analyzer,
		w,
		a.log,
		pipeline.Options{Wildcard: a.cfg.Wildcard},
	)

	if _, err := p.Run(cmd.Context(), path, columns); err != nil {
		if a.fileAccessFailed(w, err) {
			return
		}
		var pe *pipeline.PipelineError
		if errors.As(err, &pe) {
			a.log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("analysis failed")
			if pe.Phase == "load" {
				a.code = exitcode.LoadError
				return
			}
		} else {
			a.log.Error().Err(err).Msg("analysis failed")
		}
		a.code = exitcode.AnalyzeError
		return
	}
	a.code = exitcode.Success
}

// buildAnalyzer returns a chain holding the configured reference-set checks.
// With none configured the chain is empty and only describes each column.
func (a *app) buildAnalyzer() (analyze.Analyzer, error) {
	if len(a.cfg.SemanticChecks) == 0 {
		return analyze.Chain{}, nil
	}
	sets := make(map[string]*refset.Set, len(a.cfg.SemanticChecks))
	for _, sc := range a.cfg.SemanticChecks {
		set, err := refset.Load(sc.Reference, sc.ReferenceColumn, sc.Name)
		if err != nil {
			return nil, err
		}
		a.log.Info().
			Str("column", sc.Column).
			Str("reference", sc.Reference).
			Int("values", set.Len()).
			Msg("reference set loaded")
		sets[sc.Column] = set
	}
	return analyze.Chain{refset.Checker{Sets: sets}}, nil
}
