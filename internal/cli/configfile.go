package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultsFile returns the location of the grepline defaults file:
// GREPLINE_CONFIG_PATH if set, else ~/.greplinerc. Returns "" when no home
// directory can be resolved.
func DefaultsFile() string {
	if path := os.Getenv("GREPLINE_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".greplinerc")
}

// LoadConfigArgs parses the defaults file at path into arguments to prepend
// to argv. Format: one flag per line, # comments and blank lines ignored.
// A missing file yields no args and no error; a file that exists but cannot
// be read is reported to the caller.
func LoadConfigArgs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("defaults file: %w", err)
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return args, nil
}
