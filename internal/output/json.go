package output

import (
	"encoding/json"
	"io"
)

// JSONSink renders emissions as JSON Lines (one object per record).
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink creates a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

type jsonInfo struct {
	Type        string `json:"type"`
	Pattern     string `json:"pattern"`
	File        string `json:"file"`
	IgnoreCase  bool   `json:"ignore_case,omitempty"`
	LineNumbers bool   `json:"line_numbers,omitempty"`
	Before      int    `json:"before_context,omitempty"`
	After       int    `json:"after_context,omitempty"`
	Invert      bool   `json:"invert,omitempty"`
	Regexp      bool   `json:"regexp,omitempty"`
	PCRE        bool   `json:"pcre,omitempty"`
}

// jsonLine is the serialization format for a match or context line.
type jsonLine struct {
	Type    string    `json:"type"`
	LineNum int       `json:"line_number"`
	Text    string    `json:"text"`
	Matches []jsonPos `json:"matches,omitempty"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s *JSONSink) Info(sum Summary) error {
	return s.enc.Encode(jsonInfo{
		Type:        "info",
		Pattern:     sum.Pattern,
		File:        sum.Path,
		IgnoreCase:  sum.IgnoreCase,
		LineNumbers: sum.LineNumbers,
		Before:      sum.Before,
		After:       sum.After,
		Invert:      sum.Invert,
		Regexp:      sum.Regexp,
		PCRE:        sum.PCRE,
	})
}

func (s *JSONSink) PlainLine(num int, line []byte) error {
	return s.enc.Encode(jsonLine{
		Type:    "context",
		LineNum: num,
		Text:    string(line),
	})
}

func (s *JSONSink) MatchLine(num int, line []byte, spans [][2]int) error {
	jl := jsonLine{
		Type:    "match",
		LineNum: num,
		Text:    string(line),
	}
	if len(spans) > 0 {
		jl.Matches = make([]jsonPos, len(spans))
		for i, sp := range spans {
			jl.Matches[i] = jsonPos{Start: sp[0], End: sp[1]}
		}
	}
	return s.enc.Encode(jl)
}
