package output

import (
	"fmt"
	"io"
	"strconv"
)

// TextSink renders emissions as human-readable terminal text.
type TextSink struct {
	w           io.Writer
	styles      Styles
	lineNumbers bool
	buf         []byte // reused across lines
}

// NewTextSink creates a TextSink writing to w with the given styles.
func NewTextSink(w io.Writer, styles Styles, lineNumbers bool) *TextSink {
	return &TextSink{w: w, styles: styles, lineNumbers: lineNumbers}
}

func (s *TextSink) Info(sum Summary) error {
	lines := []string{
		fmt.Sprintf("Searching for '%s' in file '%s'...", sum.Pattern, sum.Path),
	}
	if sum.IgnoreCase {
		lines = append(lines, "(Case-insensitive search)")
	}
	if sum.LineNumbers {
		lines = append(lines, "(Line numbers enabled)")
	}
	if sum.Before > 0 {
		lines = append(lines, fmt.Sprintf("(Context before: %d lines)", sum.Before))
	}
	if sum.After > 0 {
		lines = append(lines, fmt.Sprintf("(Context after: %d lines)", sum.After))
	}
	if sum.Invert {
		lines = append(lines, "(Inverted match)")
	}
	if sum.Regexp {
		lines = append(lines, "(Regexp mode)")
	}
	if sum.PCRE {
		lines = append(lines, "(PCRE mode)")
	}

	for _, ln := range lines {
		if _, err := io.WriteString(s.w, s.styles.Banner.Render(ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s *TextSink) PlainLine(num int, line []byte) error {
	return s.writeLine(num, line, nil)
}

func (s *TextSink) MatchLine(num int, line []byte, spans [][2]int) error {
	return s.writeLine(num, line, spans)
}

func (s *TextSink) writeLine(num int, line []byte, spans [][2]int) error {
	buf := s.buf[:0]

	if s.lineNumbers {
		buf = append(buf, s.styles.LineNum.Render(strconv.Itoa(num))...)
		buf = append(buf, s.styles.Sep.Render(":")...)
	}

	if len(spans) > 0 {
		buf = s.highlight(buf, line, spans)
	} else {
		buf = append(buf, line...)
	}

	buf = append(buf, '\n')
	s.buf = buf

	_, err := s.w.Write(buf)
	return err
}

// highlight interleaves styled match segments with unstyled surrounding
// text, preserving byte order.
func (s *TextSink) highlight(buf, line []byte, spans [][2]int) []byte {
	prev := 0
	for _, sp := range spans {
		start, end := sp[0], sp[1]
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, s.styles.Match.Render(string(line[start:end]))...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}
