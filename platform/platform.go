package platform

import (
	"fmt"
	"iter"
	"maps"
)

// Control/status register identifiers.
const (
	CSR_LEDS      = uint16(0xbc1) // Status LED output.
	CSR_CLOCK_KHZ = uint16(0xfc0) // Core clock frequency in kHz (ticks per millisecond).
)

// RECEIVE_NONE is returned by NonblockingReceive when no byte is waiting.
// Any non-positive value means the same thing.
const RECEIVE_NONE = -1

var _platform_defines = map[string]string{
	"CSR_LEDS":      fmt.Sprintf("0x%x", CSR_LEDS),
	"CSR_CLOCK_KHZ": fmt.Sprintf("0x%x", CSR_CLOCK_KHZ),
	"RECEIVE_NONE":  fmt.Sprintf("%d", RECEIVE_NONE),
}

// Clock is a monotonic cycle counter.
type Clock interface {
	// ReadCycle returns the current counter value. It wraps at 2^32.
	ReadCycle() uint32
}

// Csr gives access to control/status registers.
type Csr interface {
	// ReadCsr returns the value of register id.
	ReadCsr(id uint16) uint32
	// WriteCsr stores value into register id.
	WriteCsr(id uint16, value uint32)
}

// ProgramCounter reports the address of the executing code.
type ProgramCounter interface {
	ReadPc() uint32
}

// UART is a byte oriented serial transport.
type UART interface {
	// Send transmits one byte, blocking until the transmitter accepts it.
	Send(ch byte)
	// NonblockingReceive returns the next received byte, or a
	// non-positive value if none is available.
	NonblockingReceive() int
}

// Platform is everything the monitor touches.
type Platform interface {
	Clock
	Csr
	ProgramCounter
	UART
}

// Defines returns the platform register names and values.
func Defines() iter.Seq2[string, string] {
	return maps.All(_platform_defines)
}

// OneSecond converts a clock frequency in kHz to the tick budget the monitor
// waits per cycle. The shift makes a "second" 1024 ms, which is close enough
// for a blinking LED and avoids a multiply.
func OneSecond(khz uint32) uint32 {
	return khz << 10
}
