package matcher

import "regexp"

// RegexMatcher uses Go's RE2 regexp engine.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher creates a RegexMatcher for the given pattern.
func NewRegexMatcher(pattern string, ignoreCase bool) (*RegexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) FindLine(line []byte) ([][2]int, bool) {
	locs := m.re.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return nil, false
	}
	spans := make([][2]int, len(locs))
	for i, loc := range locs {
		spans[i] = [2]int{loc[0], loc[1]}
	}
	return spans, true
}
