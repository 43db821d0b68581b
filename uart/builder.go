package uart

import (
	"io"
	"os"
	"time"

	"github.com/ezrec/uartmon/config"
	"github.com/ezrec/uartmon/platform"
)

// Build opens the transport a normalized profile section selects.
// onEscape is called when the console escape byte is received.
// The returned closer releases the device and is never nil on success.
func Build(tc config.TransportConfig, onEscape func()) (u platform.UART, closer func() error, err error) {
	switch tc.Kind {
	case config.TRANSPORT_CONSOLE:
		var escape byte
		if tc.Escape != nil {
			escape = *tc.Escape
		}
		var port *Port
		port, err = OpenConsole(ConsoleConfig{
			FifoSize: tc.FifoSize,
			Escape:   escape,
			OnEscape: onEscape,
		})
		if err != nil {
			return
		}
		u, closer = port, port.Close

	case config.TRANSPORT_SERIAL:
		var port *Port
		port, err = OpenSerial(SerialConfig{
			Address:  tc.Device,
			BaudRate: tc.Baud,
			Timeout:  time.Duration(tc.TimeoutMs) * time.Millisecond,
			FifoSize: tc.FifoSize,
		})
		if err != nil {
			return
		}
		u, closer = port, port.Close

	case config.TRANSPORT_TAPE:
		u, closer, err = openTape(tc.Input, tc.Output, tc.FifoSize)

	default:
		err = ErrTransportUnknown(tc.Kind)
	}

	return
}

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// tapeLine joins a tape's input and output into one port device.
type tapeLine struct {
	io.Reader
	io.Writer
	closer func() error
}

func (tl *tapeLine) Close() error {
	return tl.closer()
}

// regular reports whether r is a regular file, whose reads never wait.
func regular(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	fi, err := file.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// openTape opens tape files; "-" (or empty) is stdin or stdout.
// Inputs that can wait for data (terminals, pipes) are read through a Port.
func openTape(input, output string, fifoSize int) (u platform.UART, closer func() error, err error) {
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	var in io.Reader
	var out io.Writer

	isStdin := input == "" || input == "-"
	if isStdin {
		in = stdin
	} else {
		var inf *os.File
		inf, err = os.Open(input)
		if err != nil {
			err = &ErrOpen{Device: input, Err: err}
			return
		}
		closers = append(closers, inf.Close)
		in = inf
	}

	if output == "" || output == "-" {
		out = stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(output)
		if err != nil {
			_ = closeAll()
			err = &ErrOpen{Device: output, Err: err}
			return
		}
		closers = append(closers, ouf.Close)
		out = ouf
	}

	if regular(in) {
		u, closer = &Tape{Input: in, Output: out}, closeAll
		return
	}

	port := NewPort(&tapeLine{Reader: in, Writer: out, closer: closeAll}, fifoSize)
	port.detach = isStdin
	port.Start()

	u, closer = port, port.Close
	return
}
