package uart

import (
	"io"
	"log"

	"github.com/ezrec/uartmon/platform"
)

// Device is the shape of a TinyGo machine.UART: byte at a time transmit and
// receive, and a count of received bytes waiting in the driver.
type Device interface {
	io.ByteWriter
	io.ByteReader
	Buffered() int
}

// Machine adapts a Device to the monitor's UART contract.
type Machine struct {
	Verbose bool // If set, logs send errors.
	Device  Device
}

var _ platform.UART = (*Machine)(nil)

// Send hands ch to the driver. Drivers block until the transmitter is
// ready; a write error loses the byte.
func (mu *Machine) Send(ch byte) {
	err := mu.Device.WriteByte(ch)
	if err != nil && mu.Verbose {
		log.Printf("uart: send: %v", err)
	}
}

// NonblockingReceive only reads when the driver reports buffered data.
func (mu *Machine) NonblockingReceive() int {
	if mu.Device.Buffered() == 0 {
		return platform.RECEIVE_NONE
	}

	ch, err := mu.Device.ReadByte()
	if err != nil {
		return platform.RECEIVE_NONE
	}

	return int(ch)
}
