package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONSink_Records(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONSink(&buf)

	if err := s.Info(Summary{Pattern: "an", Path: "f.txt", IgnoreCase: true}); err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if err := s.PlainLine(1, []byte("apple")); err != nil {
		t.Fatalf("PlainLine() error: %v", err)
	}
	if err := s.MatchLine(2, []byte("banana"), [][2]int{{1, 3}, {3, 5}}); err != nil {
		t.Fatalf("MatchLine() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d records, want 3: %q", len(lines), buf.String())
	}

	var info map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &info); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if info["type"] != "info" || info["pattern"] != "an" || info["ignore_case"] != true {
		t.Errorf("info record = %v", info)
	}

	var ctx map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ctx); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ctx["type"] != "context" || ctx["line_number"] != float64(1) || ctx["text"] != "apple" {
		t.Errorf("context record = %v", ctx)
	}
	if _, ok := ctx["matches"]; ok {
		t.Error("context record should not carry matches")
	}

	var match struct {
		Type    string `json:"type"`
		LineNum int    `json:"line_number"`
		Text    string `json:"text"`
		Matches []struct {
			Start int `json:"start"`
			End   int `json:"end"`
		} `json:"matches"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &match); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if match.Type != "match" || match.LineNum != 2 || match.Text != "banana" {
		t.Errorf("match record = %+v", match)
	}
	if len(match.Matches) != 2 || match.Matches[0].Start != 1 || match.Matches[0].End != 3 {
		t.Errorf("match spans = %+v", match.Matches)
	}
}

func TestJSONSink_InvertedMatchOmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONSink(&buf)

	if err := s.MatchLine(4, []byte("no spans"), nil); err != nil {
		t.Fatalf("MatchLine() error: %v", err)
	}
	if strings.Contains(buf.String(), "matches") {
		t.Errorf("record should omit matches field: %q", buf.String())
	}
}
