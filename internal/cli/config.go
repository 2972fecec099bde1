package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// Config holds all configuration for a grepline run.
type Config struct {
	Pattern       string
	Path          string
	IgnoreCase    bool
	LineNumbers   bool
	WordMatch     bool
	Invert        bool
	Regexp        bool
	PCRE          bool
	ContextBefore int
	ContextAfter  int
	JSONOutput    bool
	Color         ColorMode
}

// Validate checks that the config is valid and returns an error if not.
// Called before any input is read.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.Path == "" {
		return fmt.Errorf("no file specified")
	}
	if c.Regexp && c.PCRE {
		return fmt.Errorf("cannot use -E (regexp) and -P (pcre) together")
	}
	if c.ContextBefore < 0 {
		return fmt.Errorf("invalid context before: %d", c.ContextBefore)
	}
	if c.ContextAfter < 0 {
		return fmt.Errorf("invalid context after: %d", c.ContextAfter)
	}
	return nil
}
