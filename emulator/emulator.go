// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"
	"time"

	"github.com/ezrec/uartmon/internal"
	"github.com/ezrec/uartmon/platform"
)

const (
	CLOCK_KHZ = 12000 // Reset value of CSR_CLOCK_KHZ (12 MHz).
	TICK_COST = 1     // Counter advance per read, in step mode.
)

var _emulator_defines = map[string]string{
	"CLOCK_KHZ": fmt.Sprintf("%v", CLOCK_KHZ),
	"TICK_COST": fmt.Sprintf("%v", TICK_COST),
}

// Registers that ignore writes.
var _read_only_csr = map[uint16]bool{
	platform.CSR_CLOCK_KHZ: true,
}

// Emulator is a host stand-in for a RudolV style core: a CSR file, a cycle
// counter, a fixed program counter and an attached UART.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	Csr      map[uint16]uint32 // Control/status registers.
	ClockKhz uint32            // Reset value of CSR_CLOCK_KHZ.
	Pc       uint32            // Value reported by ReadPc.

	// Cycle counter. In step mode every read advances it by TickCost, so
	// a spin loop always terminates. In wall clock mode it is derived from
	// host time at CSR_CLOCK_KHZ.
	Cycle     uint32
	TickCost  uint32
	WallClock bool
	Now       func() time.Time // Host time source; time.Now if nil.

	UART platform.UART // Attached transport; nil is an unconnected line.

	LedWrites int // Number of writes to CSR_LEDS since reset.

	epoch time.Time
}

var _ platform.Platform = (*Emulator)(nil)

// NewEmulator creates an emulator in step mode with reset CSR values.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		ClockKhz: CLOCK_KHZ,
		TickCost: TICK_COST,
	}

	emu.Reset()

	return
}

// Defines returns an iterator over the emulator and platform defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		platform.Defines(),
	)
}

// Reset the platform state.
// - Restores CSRs to reset values.
// - Zeros the cycle counter and restarts the wall clock epoch.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Csr = map[uint16]uint32{
		platform.CSR_LEDS:      0,
		platform.CSR_CLOCK_KHZ: emu.ClockKhz,
	}
	emu.Cycle = 0
	emu.LedWrites = 0
	emu.epoch = emu.now()
}

func (emu *Emulator) now() time.Time {
	if emu.Now != nil {
		return emu.Now()
	}
	return time.Now()
}

// ReadCycle returns the cycle counter.
func (emu *Emulator) ReadCycle() (cycle uint32) {
	if emu.WallClock {
		khz := int64(emu.Csr[platform.CSR_CLOCK_KHZ])
		us := emu.now().Sub(emu.epoch).Microseconds()
		// Truncation to 32 bits is the hardware wrap.
		emu.Cycle = uint32(us * khz / 1000)
		return emu.Cycle
	}

	cycle = emu.Cycle
	emu.Cycle += emu.TickCost
	return
}

// ReadCsr returns a CSR value. Unmapped registers read as zero.
func (emu *Emulator) ReadCsr(id uint16) uint32 {
	value, ok := emu.Csr[id]
	if !ok && emu.Verbose {
		log.Printf("emulator: csr 0x%03x: unmapped read", id)
	}

	return value
}

// WriteCsr stores a CSR value. Writes to read-only registers are dropped.
func (emu *Emulator) WriteCsr(id uint16, value uint32) {
	if _read_only_csr[id] {
		if emu.Verbose {
			log.Printf("emulator: csr 0x%03x: read-only, write 0x%x dropped", id, value)
		}
		return
	}

	emu.Csr[id] = value

	if id == platform.CSR_LEDS {
		emu.LedWrites++
		if emu.Verbose {
			log.Printf("emulator: leds %v", emu)
		}
	}
}

// ReadPc returns the program counter.
func (emu *Emulator) ReadPc() uint32 {
	return emu.Pc
}

// Send transmits on the attached UART.
func (emu *Emulator) Send(ch byte) {
	if emu.UART == nil {
		return
	}
	emu.UART.Send(ch)
}

// NonblockingReceive polls the attached UART.
func (emu *Emulator) NonblockingReceive() int {
	if emu.UART == nil {
		return platform.RECEIVE_NONE
	}
	return emu.UART.NonblockingReceive()
}

// Leds returns the low eight bits of CSR_LEDS.
func (emu *Emulator) Leds() uint8 {
	return uint8(emu.Csr[platform.CSR_LEDS])
}

// String renders the LEDs, most significant first, '*' for lit.
func (emu *Emulator) String() string {
	var text strings.Builder

	leds := emu.Leds()
	for bit := 7; bit >= 0; bit-- {
		if (leds>>bit)&1 != 0 {
			text.WriteByte('*')
		} else {
			text.WriteByte('.')
		}
	}

	return text.String()
}
