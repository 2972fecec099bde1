package matcher

import "errors"

// ErrInvalidPattern is wrapped by NewMatcher when the configured pattern
// cannot be compiled into a usable matcher.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher finds pattern matches in a single line.
type Matcher interface {
	// FindLine returns the byte-offset spans of every non-overlapping match
	// within line, in left-to-right order, and whether the line matched.
	// Spans index into line as passed; callers must not assume they survive
	// a reused line buffer.
	FindLine(line []byte) ([][2]int, bool)
}
