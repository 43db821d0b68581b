package uart

import (
	"errors"
	"time"

	"github.com/goburrow/serial"
)

const (
	SERIAL_BAUD    = 115200                // Default line rate.
	SERIAL_TIMEOUT = 50 * time.Millisecond // Read timeout; bounds Close latency.
)

// SerialConfig selects a host serial line.
type SerialConfig struct {
	Address  string        // Device path, e.g. /dev/ttyUSB0 or COM3.
	BaudRate int           // Defaults to SERIAL_BAUD.
	Timeout  time.Duration // Defaults to SERIAL_TIMEOUT.
	FifoSize int           // Receive queue depth; defaults to FIFO_SIZE.
}

// OpenSerial opens an 8N1 serial line and starts receiving from it.
func OpenSerial(cfg SerialConfig) (port *Port, err error) {
	if cfg.Address == "" {
		err = ErrSerialAddress
		return
	}

	if cfg.BaudRate == 0 {
		cfg.BaudRate = SERIAL_BAUD
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = SERIAL_TIMEOUT
	}

	line, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		err = &ErrOpen{Device: cfg.Address, Err: err}
		return
	}

	port = NewPort(line, cfg.FifoSize)
	port.transient = func(err error) bool {
		return errors.Is(err, serial.ErrTimeout)
	}
	port.Start()

	return
}
