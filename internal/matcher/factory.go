package matcher

import (
	"fmt"
	"regexp"
)

// Mode selects the pattern engine.
type Mode int

const (
	ModeLiteral Mode = iota // plain substring
	ModeRegexp              // RE2
	ModePCRE                // PCRE2 via pure Go port
)

// NewMatcher creates the appropriate Matcher based on the provided options.
// Selection logic:
//   - ModePCRE -> PCREMatcher
//   - ModeRegexp -> RegexMatcher
//   - ModeLiteral + word or ignore-case -> RegexMatcher over the escaped
//     pattern, so word boundaries can be asserted and case folding covers
//     the full Unicode pairs, not just ASCII
//   - ModeLiteral -> LiteralMatcher (substring search)
//
// Escaping the literal before compiling keeps the substring and regex paths
// in agreement for literal queries.
func NewMatcher(pattern string, mode Mode, ignoreCase bool, wordMatch bool) (Matcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	switch mode {
	case ModePCRE:
		if wordMatch {
			pattern = `\b(?:` + pattern + `)\b`
		}
		m, err := NewPCREMatcher(pattern, ignoreCase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		return m, nil

	case ModeRegexp:
		if wordMatch {
			pattern = `\b(?:` + pattern + `)\b`
		}
		m, err := NewRegexMatcher(pattern, ignoreCase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		return m, nil

	default:
		if wordMatch || ignoreCase {
			escaped := regexp.QuoteMeta(pattern)
			if wordMatch {
				escaped = `\b` + escaped + `\b`
			}
			m, err := NewRegexMatcher(escaped, ignoreCase)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
			}
			return m, nil
		}
		return NewLiteralMatcher(pattern), nil
	}
}
