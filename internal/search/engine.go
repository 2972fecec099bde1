// Package search implements the streaming match-and-context engine: a
// single pass over the line source deciding, per line, whether to buffer it,
// emit it, or drop it, with memory bounded by the before-context window.
package search

import (
	"fmt"

	"github.com/da578/grepline/internal/input"
	"github.com/da578/grepline/internal/matcher"
	"github.com/da578/grepline/internal/output"
)

// bufferedLine is a line held back as potential leading context.
type bufferedLine struct {
	num  int
	text []byte
}

// Engine runs the match-and-context loop over a line source.
type Engine struct {
	matcher matcher.Matcher
	before  int
	after   int
	invert  bool
}

// New creates an Engine. before and after are the leading/trailing context
// line counts; invert selects non-matching lines instead.
func New(m matcher.Matcher, before, after int, invert bool) *Engine {
	return &Engine{matcher: m, before: before, after: after, invert: invert}
}

// Run consumes src until exhaustion, emitting matched lines and their
// context to sink. Any source or sink error aborts the run immediately;
// already-written output stands. At most `before` lines are buffered at any
// point, however large the input.
func (e *Engine) Run(src *input.LineScanner, sink output.Sink) error {
	// Ring buffer for leading-context lines, oldest first.
	var ring []bufferedLine
	if e.before > 0 {
		ring = make([]bufferedLine, 0, e.before)
	}

	afterRemaining := 0  // trailing-context lines still owed
	blockActive := false // previous line was emitted

	for src.Scan() {
		line := src.Line()
		num := src.LineNum()

		spans, ok := e.matcher.FindLine(line)
		if e.invert {
			ok = !ok
			spans = nil
		}

		switch {
		case ok:
			// Starting a new block: the buffered lines are its leading
			// context. A block that is already active is contiguous with
			// this match, so the (empty or stale) buffer is dropped.
			if !blockActive && e.before > 0 {
				for _, bl := range ring {
					if err := sink.PlainLine(bl.num, bl.text); err != nil {
						return err
					}
				}
			}
			ring = ring[:0]

			if err := sink.MatchLine(num, line, spans); err != nil {
				return err
			}
			afterRemaining = e.after
			blockActive = true

		case afterRemaining > 0:
			if err := sink.PlainLine(num, line); err != nil {
				return err
			}
			afterRemaining--
			blockActive = true

		default:
			if e.before > 0 {
				if len(ring) >= e.before {
					ring = ring[1:]
				}
				// Copy: the scanner reuses its buffer on the next Scan.
				cp := make([]byte, len(line))
				copy(cp, line)
				ring = append(ring, bufferedLine{num: num, text: cp})
			}
			blockActive = false
		}
	}

	if err := src.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}

	// Lines still buffered never became context for a match; drop them.
	return nil
}
