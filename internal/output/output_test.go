package output

import (
	"bytes"
	"testing"
)

func TestTextSink_Info(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf, NoStyles(), false)

	err := s.Info(Summary{
		Pattern:     "an",
		Path:        "fruit.txt",
		IgnoreCase:  true,
		LineNumbers: true,
		Before:      1,
		After:       2,
	})
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}

	want := "Searching for 'an' in file 'fruit.txt'...\n" +
		"(Case-insensitive search)\n" +
		"(Line numbers enabled)\n" +
		"(Context before: 1 lines)\n" +
		"(Context after: 2 lines)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextSink_InfoDefaultsOnly(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf, NoStyles(), false)

	if err := s.Info(Summary{Pattern: "xyz", Path: "a.log"}); err != nil {
		t.Fatalf("Info() error: %v", err)
	}

	// Only the banner line: non-default options alone are mentioned.
	want := "Searching for 'xyz' in file 'a.log'...\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextSink_LineNumbers(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf, NoStyles(), true)

	if err := s.PlainLine(7, []byte("context here")); err != nil {
		t.Fatalf("PlainLine() error: %v", err)
	}
	if err := s.MatchLine(8, []byte("match here"), [][2]int{{0, 5}}); err != nil {
		t.Fatalf("MatchLine() error: %v", err)
	}

	want := "7:context here\n8:match here\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextSink_NoLineNumbers(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf, NoStyles(), false)

	if err := s.MatchLine(3, []byte("just text"), nil); err != nil {
		t.Fatalf("MatchLine() error: %v", err)
	}
	if got := buf.String(); got != "just text\n" {
		t.Errorf("got %q, want %q", got, "just text\n")
	}
}

func TestTextSink_HighlightPreservesByteOrder(t *testing.T) {
	// With empty styles the highlighted output must reassemble the exact line,
	// whatever the span layout.
	tests := []struct {
		name  string
		line  string
		spans [][2]int
	}{
		{"middle", "banana", [][2]int{{1, 3}}},
		{"adjacent spans", "banana", [][2]int{{1, 3}, {3, 5}}},
		{"full line", "banana", [][2]int{{0, 6}}},
		{"span past end clamped", "short", [][2]int{{2, 99}}},
		{"span start past end", "short", [][2]int{{99, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewTextSink(&buf, NoStyles(), false)
			if err := s.MatchLine(1, []byte(tt.line), tt.spans); err != nil {
				t.Fatalf("MatchLine() error: %v", err)
			}
			if got := buf.String(); got != tt.line+"\n" {
				t.Errorf("got %q, want %q", got, tt.line+"\n")
			}
		})
	}
}
