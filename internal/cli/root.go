package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Execute parses args (prepended with any defaults-file args) and runs the
// search. Returns the process exit code.
func Execute(args []string) int {
	code := 0
	cmd := newRootCmd(&code)

	extra, err := LoadConfigArgs(DefaultsFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	if extra != nil {
		args = append(extra, args...)
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	return code
}

// newRootCmd builds the grepline command. The exit code of the run is
// written through code so usage errors and run errors stay distinct.
func newRootCmd(code *int) *cobra.Command {
	var cfg Config
	var colorWhen string

	cmd := &cobra.Command{
		Use:   "grepline [flags] PATTERN FILE",
		Short: "Search a file for lines matching a pattern",
		Long: "grepline scans a file line by line, printing lines that match a pattern\n" +
			"along with optional leading and trailing context. Matched text is\n" +
			"highlighted on terminals. Use - as FILE to read from standard input.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Path = args[1]

			switch strings.ToLower(colorWhen) {
			case "always":
				cfg.Color = ColorAlways
			case "never":
				cfg.Color = ColorNever
			case "auto", "":
				cfg.Color = ColorAuto
			default:
				return fmt.Errorf("invalid --color value: %q", colorWhen)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			*code = Run(cfg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "ignore case distinctions in the pattern")
	cmd.Flags().BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix each output line with its line number")
	cmd.Flags().BoolVarP(&cfg.WordMatch, "word-regexp", "w", false, "match only whole words")
	cmd.Flags().BoolVarP(&cfg.Invert, "invert-match", "v", false, "select non-matching lines")
	cmd.Flags().BoolVarP(&cfg.Regexp, "regexp", "E", false, "treat PATTERN as a regular expression")
	cmd.Flags().BoolVarP(&cfg.PCRE, "pcre", "P", false, "treat PATTERN as a PCRE2 regular expression")
	cmd.Flags().IntVarP(&cfg.ContextBefore, "before-context", "B", 0, "print NUM lines of leading context")
	cmd.Flags().IntVarP(&cfg.ContextAfter, "after-context", "A", 0, "print NUM lines of trailing context")
	cmd.Flags().BoolVar(&cfg.JSONOutput, "json", false, "output records as JSON lines")
	cmd.Flags().StringVar(&colorWhen, "color", "auto", "when to color output: auto, always, never")

	return cmd
}
