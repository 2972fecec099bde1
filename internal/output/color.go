package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Banner  lipgloss.Style
	LineNum lipgloss.Style
	Sep     lipgloss.Style
	Match   lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Faint(true),
		LineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),             // green
		Sep:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),             // cyan
		Match:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle(),
		LineNum: lipgloss.NewStyle(),
		Sep:     lipgloss.NewStyle(),
		Match:   lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
