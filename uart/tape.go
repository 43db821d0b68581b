// Package uart provides byte transports for the monitor: synchronous tapes
// over readers and writers, goroutine fed ports over host devices (serial
// lines and the terminal), and an adapter for TinyGo style UART drivers.
package uart

import (
	"io"

	"github.com/ezrec/uartmon/platform"
)

// Tape is a synchronous UART over an io.Reader and an io.Writer.
//
// NonblockingReceive reads the Input directly, so it only honours its name
// when Input never blocks (files, in-memory buffers). Use a Port for
// terminals, pipes and serial lines.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ platform.UART = (*Tape)(nil)

// Send writes one byte to the Output. Without an Output the byte is lost.
func (tc *Tape) Send(ch byte) {
	if tc.Output == nil {
		return
	}

	tc.Output.Write([]byte{ch})
}

// NonblockingReceive reads one byte from the Input. End of input, read
// errors and a missing Input all look like an idle line.
func (tc *Tape) NonblockingReceive() int {
	if tc.Input == nil {
		return platform.RECEIVE_NONE
	}

	var one [1]byte
	n, _ := tc.Input.Read(one[:])
	if n != 1 {
		return platform.RECEIVE_NONE
	}

	return int(one[0])
}
