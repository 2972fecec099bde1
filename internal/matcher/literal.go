package matcher

import "bytes"

// LiteralMatcher does case-sensitive substring matching using bytes.Index.
// Case-insensitive literal queries are compiled through the regex engine
// instead (see NewMatcher): folding the haystack here can change byte
// length for some Unicode case pairs, which would shift highlight spans
// relative to the original line.
type LiteralMatcher struct {
	pattern []byte
}

// NewLiteralMatcher creates a LiteralMatcher for a single literal pattern.
func NewLiteralMatcher(pattern string) *LiteralMatcher {
	return &LiteralMatcher{pattern: []byte(pattern)}
}

func (m *LiteralMatcher) FindLine(line []byte) ([][2]int, bool) {
	if len(m.pattern) == 0 {
		return nil, false
	}

	var spans [][2]int
	off := 0
	for {
		i := bytes.Index(line[off:], m.pattern)
		if i < 0 {
			break
		}
		start := off + i
		end := start + len(m.pattern)
		spans = append(spans, [2]int{start, end})
		off = end
	}
	return spans, len(spans) > 0
}
