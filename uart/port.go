package uart

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ezrec/uartmon/platform"
)

const (
	FIFO_SIZE = 256                  // Default receive queue depth.
	POLL_IDLE = 5 * time.Millisecond // Reader back-off when the device is idle.
)

// Port is a UART over a host device. A reader goroutine drains the device
// into a bounded receive queue, so NonblockingReceive never blocks no matter
// how the device behaves. Send writes straight through.
type Port struct {
	Verbose bool // If set, logs dropped bytes and reader errors.

	// Escape, if non-zero, is a byte that is not queued. Instead OnEscape
	// is called from the reader goroutine.
	Escape   byte
	OnEscape func()

	rx        io.Reader
	tx        io.Writer
	closer    io.Closer
	transient func(err error) bool // Read errors that only mean "no data yet".
	detach    bool                 // Close does not wait for the reader.

	mu      sync.Mutex
	fifo    Fifo
	dropped int

	started bool
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
}

var _ platform.UART = (*Port)(nil)
var _ Device = (*Port)(nil)

// NewPort creates a port over rw with a receive queue of capacity bytes
// (FIFO_SIZE if capacity <= 0). If rw is an io.Closer, Close closes it.
// Call Start to begin receiving.
func NewPort(rw io.ReadWriter, capacity int) (port *Port) {
	if capacity <= 0 {
		capacity = FIFO_SIZE
	}

	port = &Port{
		rx:     rw,
		tx:     rw,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	port.closer, _ = rw.(io.Closer)
	port.fifo.Capacity = capacity
	port.fifo.Rewind()

	return
}

// Start launches the reader goroutine.
func (port *Port) Start() {
	port.started = true

	go func() {
		defer close(port.done)
		buf := make([]byte, 64)

		for {
			select {
			case <-port.stopCh:
				return
			default:
			}

			n, err := port.rx.Read(buf)
			if n > 0 {
				port.deliver(buf[:n])
			}
			if err != nil {
				if port.transient != nil && port.transient(err) {
					if n == 0 {
						time.Sleep(POLL_IDLE)
					}
					continue
				}
				if port.Verbose && !errors.Is(err, io.EOF) {
					log.Printf("uart: receive: %v", err)
				}
				return
			}
			if n == 0 {
				time.Sleep(POLL_IDLE)
			}
		}
	}()
}

func (port *Port) deliver(data []byte) {
	for _, ch := range data {
		if port.Escape != 0 && ch == port.Escape && port.OnEscape != nil {
			port.OnEscape()
			continue
		}

		port.mu.Lock()
		err := port.fifo.Push(ch)
		if err != nil {
			port.dropped++
		}
		port.mu.Unlock()

		if err != nil && port.Verbose {
			log.Printf("uart: receive: dropped 0x%02x: %v", ch, err)
		}
	}
}

// Send writes ch to the device.
func (port *Port) Send(ch byte) {
	err := port.WriteByte(ch)
	if err != nil && port.Verbose {
		log.Printf("uart: send: %v", err)
	}
}

// NonblockingReceive returns the oldest queued byte, or RECEIVE_NONE.
func (port *Port) NonblockingReceive() int {
	ch, err := port.ReadByte()
	if err != nil {
		return platform.RECEIVE_NONE
	}

	return int(ch)
}

// Buffered returns the number of queued bytes.
func (port *Port) Buffered() int {
	port.mu.Lock()
	defer port.mu.Unlock()

	return port.fifo.Size
}

// ReadByte dequeues one byte. Returns ErrChannelEmpty if none is queued.
func (port *Port) ReadByte() (ch byte, err error) {
	port.mu.Lock()
	defer port.mu.Unlock()

	ch, ok := port.fifo.Pop()
	if !ok {
		err = ErrChannelEmpty
	}

	return
}

// WriteByte writes ch to the device.
func (port *Port) WriteByte(ch byte) (err error) {
	_, err = port.tx.Write([]byte{ch})
	return
}

// Dropped returns how many received bytes were lost to a full queue.
func (port *Port) Dropped() int {
	port.mu.Lock()
	defer port.mu.Unlock()

	return port.dropped
}

// Close stops the reader and closes the device.
//
// Devices with a read timeout are closed after the reader has exited.
// Blocking devices are closed first, which is what unblocks the reader.
// Detached readers (stdin) are left to exit with the process.
func (port *Port) Close() (err error) {
	port.stopped.Do(func() {
		close(port.stopCh)
	})

	closeDevice := func() error {
		if port.closer == nil {
			return nil
		}
		return port.closer.Close()
	}

	if !port.started {
		err = closeDevice()
		return
	}

	switch {
	case port.detach:
		err = closeDevice()
	case port.transient != nil:
		<-port.done
		err = closeDevice()
	default:
		err = closeDevice()
		<-port.done
	}

	return
}
