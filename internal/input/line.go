package input

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// DecodeError reports a line whose bytes are not valid UTF-8. Decoding
// failures are fatal for the run; there is no skip-bad-lines mode.
type DecodeError struct {
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: invalid utf-8", e.Line)
}

// LineScanner supplies lines sequentially from an io.Reader with 1-based
// numbering. Forward-only: one line is held at a time, the input is never
// buffered whole.
type LineScanner struct {
	scanner *bufio.Scanner
	lineNum int
	line    []byte
	err     error
}

// NewLineScanner creates a LineScanner for the given reader.
func NewLineScanner(r io.Reader) *LineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &LineScanner{scanner: scanner}
}

// Scan advances to the next line. It returns false at end of input or on
// the first error; Err distinguishes the two.
func (s *LineScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return false
	}
	s.lineNum++
	s.line = s.scanner.Bytes()
	if !utf8.Valid(s.line) {
		s.err = &DecodeError{Line: s.lineNum}
		return false
	}
	return true
}

// Line returns the current line without its trailing newline. The returned
// slice is only valid until the next call to Scan — the scanner reuses its
// buffer.
func (s *LineScanner) Line() []byte { return s.line }

// LineNum returns the 1-based number of the current line.
func (s *LineScanner) LineNum() int { return s.lineNum }

// Err returns the first error encountered, or nil at clean end of input.
func (s *LineScanner) Err() error { return s.err }
