package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/da578/grepline/internal/input"
	"github.com/da578/grepline/internal/matcher"
	"github.com/da578/grepline/internal/output"
	"github.com/da578/grepline/internal/search"
)

// Run executes the search with the given config.
// Returns exit code: 0 = run completed, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	mode := matcher.ModeLiteral
	switch {
	case cfg.PCRE:
		mode = matcher.ModePCRE
	case cfg.Regexp:
		mode = matcher.ModeRegexp
	}

	m, err := matcher.NewMatcher(cfg.Pattern, mode, cfg.IgnoreCase, cfg.WordMatch)
	if err != nil {
		logger.Error("invalid pattern", "err", err)
		return 2
	}

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
		// lipgloss degrades to no-op styles on non-terminals; force ANSI.
		lipgloss.SetColorProfile(termenv.ANSI)
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	w := output.NewStdoutWriter()
	var sink output.Sink
	if cfg.JSONOutput {
		sink = output.NewJSONSink(w)
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles()
		}
		sink = output.NewTextSink(w, styles, cfg.LineNumbers)
	}

	var src *os.File
	display := cfg.Path
	if cfg.Path == "-" {
		src = os.Stdin
		display = "(standard input)"
	} else {
		f, err := os.Open(cfg.Path)
		if err != nil {
			logger.Error("cannot open file", "path", cfg.Path, "err", err)
			return 2
		}
		defer f.Close()
		src = f
	}

	if err := sink.Info(output.Summary{
		Pattern:     cfg.Pattern,
		Path:        display,
		IgnoreCase:  cfg.IgnoreCase,
		LineNumbers: cfg.LineNumbers,
		Before:      cfg.ContextBefore,
		After:       cfg.ContextAfter,
		Invert:      cfg.Invert,
		Regexp:      cfg.Regexp,
		PCRE:        cfg.PCRE,
	}); err != nil {
		logger.Error("write failed", "err", err)
		return 2
	}

	eng := search.New(m, cfg.ContextBefore, cfg.ContextAfter, cfg.Invert)
	if err := eng.Run(input.NewLineScanner(src), sink); err != nil {
		logger.Error("search failed", "path", display, "err", err)
		return 2
	}
	return 0
}
