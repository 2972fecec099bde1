package matcher

import "go.elara.ws/pcre"

// PCREMatcher matches using PCRE2-compatible regexes via the pure Go pcre
// package. Supports lookahead, lookbehind, backreferences, atomic groups,
// and all other PCRE2 features.
type PCREMatcher struct {
	re *pcre.Regexp
}

// NewPCREMatcher creates a PCREMatcher from a PCRE2 pattern string.
func NewPCREMatcher(pattern string, ignoreCase bool) (*PCREMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &PCREMatcher{re: re}, nil
}

func (m *PCREMatcher) FindLine(line []byte) ([][2]int, bool) {
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
