package main

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/csvfaq/internal/config"
	"github.com/gyeh/csvfaq/internal/exitcode"
	"github.com/gyeh/csvfaq/internal/logging"
	"github.com/gyeh/csvfaq/internal/source"
)

const progName = "csvfaq"

// app carries one invocation's configuration and resulting exit code.
type app struct {
	cfg  config.Config
	code int
	log  zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   progName + " [file] [column...]",
		Short: "Exploratory data-quality analysis for CSV files",
		Long: "Lists the columns of a CSV file, or analyzes the named columns " +
			"(use :all for every column).",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runRoot,
	}

	// Everything after the file path is a column name, even "-net".
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfg.ConfigPath, "config", "", "Path to YAML config file")
	pf.StringVar(&a.cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&a.cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.cfg.Progress, "progress", false, "Show a progress bar while reading the input")
	pf.BoolVar(&a.cfg.NoColor, "no-color", false, "Disable colored output")
	return cmd
}

// run executes one invocation and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return exitcode.UsageError
	}
	return a.code
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if a.cfg.NoColor {
		color.NoColor = true
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		printHelp(out)
		a.code = exitcode.Success
		return nil
	}

	if a.cfg.ConfigPath != "" {
		if err := a.cfg.LoadFromFile(a.cfg.ConfigPath); err != nil {
			return err
		}
	}
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = logging.New(cmd.ErrOrStderr(), a.cfg.LogFormat, a.cfg.LogLevel)

	path := args[0]
	if len(args) == 1 {
		a.listColumns(out, path)
		return nil
	}
	a.analyze(cmd, out, path, args[1:])
	return nil
}

// fileAccessFailed tells the user why path could not be read and sets the
// exit code. It reports false for any other error.
func (a *app) fileAccessFailed(w io.Writer, err error) bool {
	var fae *source.FileAccessError
	if !errors.As(err, &fae) {
		return false
	}
	red := color.New(color.FgRed, color.Bold)
	switch fae.Kind {
	case source.PermissionDenied:
		red.Fprintf(w, "Error: you do not have read-permission on file `%s`. Please try again.\n", fae.Path)
	default:
		red.Fprintf(w, "Error: could not find file `%s`. Please try again.\n", fae.Path)
	}
	io.WriteString(w, "Exiting...\n")

	a.log.Debug().Err(fae.Err).Str("file", fae.Path).Msg("input not accessible")
	if a.cfg.StrictExit {
		a.code = exitcode.FileAccessError
	} else {
		a.code = exitcode.Success
	}
	return true
}
