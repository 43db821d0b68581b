//go:build unix

package uart

import (
	"errors"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"
)

// ConsoleConfig selects the host terminal as the UART.
type ConsoleConfig struct {
	FifoSize int    // Receive queue depth; defaults to FIFO_SIZE.
	Escape   byte   // Byte that calls OnEscape instead of being received.
	OnEscape func() // Typically cancels the monitor.
}

// ttyStdio reads a non-blocking stdin and writes stdout.
type ttyStdio struct {
	fd       int
	oldState *term.State
	out      io.Writer
}

func (tty *ttyStdio) Read(p []byte) (n int, err error) {
	n, err = syscall.Read(tty.fd, p)
	if n < 0 {
		n = 0
	}
	return
}

func (tty *ttyStdio) Write(p []byte) (int, error) {
	return tty.out.Write(p)
}

// Close restores stdin to blocking, cooked mode.
func (tty *ttyStdio) Close() (err error) {
	err = syscall.SetNonblock(tty.fd, false)
	if tty.oldState != nil {
		if rerr := term.Restore(tty.fd, tty.oldState); rerr != nil {
			err = rerr
		}
		tty.oldState = nil
	}
	return
}

// OpenConsole puts stdin in raw, non-blocking mode and starts receiving
// keystrokes from it. Output goes to stdout unmodified, so the monitor's own
// "\r\n" line endings are what the terminal sees.
//
// When stdin is not a terminal it is read as-is, without raw mode.
func OpenConsole(cfg ConsoleConfig) (port *Port, err error) {
	tty := &ttyStdio{
		fd:  int(os.Stdin.Fd()),
		out: os.Stdout,
	}

	if term.IsTerminal(tty.fd) {
		tty.oldState, err = term.MakeRaw(tty.fd)
		if err != nil {
			err = &ErrOpen{Device: "stdin", Err: err}
			return
		}
	}

	err = syscall.SetNonblock(tty.fd, true)
	if err != nil {
		_ = tty.Close()
		err = &ErrOpen{Device: "stdin", Err: err}
		return
	}

	port = NewPort(tty, cfg.FifoSize)
	port.Escape = cfg.Escape
	port.OnEscape = cfg.OnEscape
	port.transient = func(err error) bool {
		return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
	}
	port.Start()

	return
}
