package output

// Summary describes a search for the informational banner.
type Summary struct {
	Pattern     string
	Path        string
	IgnoreCase  bool
	LineNumbers bool
	Before      int
	After       int
	Invert      bool
	Regexp      bool
	PCRE        bool
}

// Sink consumes line emissions from the search engine and renders them.
// Implementations may write immediately per call; they are never called
// concurrently.
type Sink interface {
	// Info renders the banner describing the search, before any lines.
	Info(sum Summary) error

	// PlainLine renders a context line, no highlighting.
	PlainLine(num int, line []byte) error

	// MatchLine renders a matched line. Spans are non-overlapping byte
	// offsets into line in left-to-right order; an empty slice means the
	// match carries no highlightable positions (inverted matches).
	MatchLine(num int, line []byte, spans [][2]int) error
}
