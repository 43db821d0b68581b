package uart

import (
	"errors"

	"github.com/ezrec/uartmon/translate"
)

var f = translate.From

var (
	// Receive queue errors
	ErrChannelFull  = errors.New(f("channel full"))
	ErrChannelEmpty = errors.New(f("channel empty"))

	// Transport setup errors
	ErrSerialAddress      = errors.New(f("serial device address required"))
	ErrConsoleUnsupported = errors.New(f("console transport not supported on this host"))
)

// ErrOpen reports a transport device that could not be opened.
type ErrOpen struct {
	Device string
	Err    error
}

func (err *ErrOpen) Error() string {
	return f("open %v: %v", err.Device, err.Err)
}

func (err *ErrOpen) Unwrap() error {
	return err.Err
}

// ErrTransportUnknown is returned by Build for an unrecognised kind.
type ErrTransportUnknown string

func (eu ErrTransportUnknown) Error() string {
	return f("transport %q unknown", string(eu))
}
