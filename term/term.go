// Package term switches a terminal between cooked and raw input modes
// and guarantees the original mode comes back, even when the process
// is killed mid-session.
package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Terminal controls the input mode of one terminal descriptor.
type Terminal struct {
	fd       int
	original unix.Termios
}

// NewTerminal captures the current attributes of f for later restore.
func NewTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	attrs, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, original: *attrs}, nil
}

// SetRaw switches per-keystroke reading on or off. Only the echo and
// canonical-input bits are touched: signal keys, flow control and
// output processing keep their existing settings. Repeating a call
// with the same value has no further effect.
func (t *Terminal) SetRaw(raw bool) error {
	attrs, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	if raw {
		attrs.Lflag &^= unix.ECHO | unix.ICANON
	} else {
		attrs.Lflag |= unix.ECHO | unix.ICANON
	}
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, attrs)
}

// Restore writes back the attributes captured by NewTerminal.
func (t *Terminal) Restore() error {
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original)
}
