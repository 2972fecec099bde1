package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes to a file descriptor using writev. Satisfies io.Writer so
// sinks can also target a plain buffer in tests.
type Writer struct {
	fd int
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

func (w *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{p})
		if err != nil {
			return total, err
		}
		p = p[n:]
		total += n
	}
	return total, nil
}
