// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor implements a UART monitor loop for bring-up of a new core.
//
// After a one-time banner, every cycle the monitor toggles a pattern on the
// status LEDs, prints the program counter and a greeting, then spends one
// "second" of cycle counter ticks echoing whatever arrives on the UART. A
// stalled clock or a stuck transmitter stalls the monitor, which is itself
// the diagnosis.
package monitor

import (
	"context"
	"log"

	"github.com/ezrec/uartmon/compliance"
	"github.com/ezrec/uartmon/console"
	"github.com/ezrec/uartmon/platform"
)

// Config is the fixed behaviour of a monitor.
type Config struct {
	Banner     string // Printed once, after InitLeds.
	Hello      string // Printed after the PC every cycle.
	InitLeds   uint8  // Written before the banner.
	BannerLeds uint8  // Written after the banner; the toggle starts here.
	CycleMask  uint8  // XORed into the LEDs once per cycle.
	Echo       Echo

	// Budget converts CSR_CLOCK_KHZ to ticks per cycle. It is called once,
	// at Start. Nil means platform.OneSecond.
	Budget func(khz uint32) uint32
}

// DefaultConfig returns the configuration of the RudolV UART test program.
func DefaultConfig() Config {
	return Config{
		Banner:     "Starting\r\n",
		Hello:      " Hello5\r\n",
		InitLeds:   0x03,
		BannerLeds: 0xaa,
		CycleMask:  0xa4,
		Echo:       ECHO_INCREMENT,
	}
}

// Monitor is the loop state. Only the monitor writes the LEDs, so Leds is
// always what the hardware shows.
type Monitor struct {
	Verbose bool // If set, logs every cycle.

	Config
	Platform platform.Platform
	Reporter compliance.Reporter

	State  State
	Leds   uint8  // Current status pattern.
	Budget uint32 // Ticks per cycle, fixed at Start.
	Cycles int    // Completed cycles.
	Echoed int    // Bytes answered.
}

// NewMonitor creates a monitor in the INIT state with a Noop reporter.
func NewMonitor(plat platform.Platform, cfg Config) (mon *Monitor) {
	mon = &Monitor{
		Config:   cfg,
		Platform: plat,
		Reporter: compliance.Noop{},
	}

	return
}

// Start performs the INIT to BANNER transition.
// - Derives the tick budget from the clock frequency CSR.
// - Writes InitLeds and prints the banner.
// - Loads BannerLeds as the status pattern.
func (mon *Monitor) Start() {
	plat := mon.Platform

	budget := mon.Config.Budget
	if budget == nil {
		budget = platform.OneSecond
	}
	khz := plat.ReadCsr(platform.CSR_CLOCK_KHZ)
	mon.Budget = budget(khz)

	if mon.Verbose {
		log.Printf("monitor: clock %d kHz, %d ticks per cycle", khz, mon.Budget)
	}

	mon.Reporter.Init()

	plat.WriteCsr(platform.CSR_LEDS, uint32(mon.InitLeds))
	console.Str(plat, mon.Banner)
	mon.Reporter.WriteStr(mon.Banner)

	mon.Leds = mon.BannerLeds
	plat.WriteCsr(platform.CSR_LEDS, uint32(mon.Leds))

	mon.State = BANNER
}

// toggle XORs mask into the status pattern and shows it.
func (mon *Monitor) toggle(mask uint8) {
	mon.Leds ^= mask
	mon.Platform.WriteCsr(platform.CSR_LEDS, uint32(mon.Leds))
}

// Poll answers at most one received byte. Negative receive results mean
// the line is idle; the increment echo also ignores NUL.
func (mon *Monitor) Poll() (ok bool) {
	plat := mon.Platform

	ch := plat.NonblockingReceive()
	if ch < 0 || (ch == 0 && mon.Echo != ECHO_HEX) {
		return
	}

	switch mon.Echo {
	case ECHO_HEX:
		// The dump shows NUL too.
		if ch > 0xff {
			plat.Send('*')
		} else {
			console.Hex8(plat, uint8(ch))
		}
	default:
		// Truncation makes 0xff answer 0x00.
		plat.Send(byte(ch + 1))
	}

	mon.Echoed++
	ok = true

	return
}

// Step runs one CYCLE iteration, starting the monitor first if needed.
// It returns after Budget ticks of polling.
func (mon *Monitor) Step() {
	if mon.State == INIT {
		mon.Start()
	}
	mon.State = CYCLE

	plat := mon.Platform

	mon.toggle(mon.CycleMask)
	console.Hex32(plat, plat.ReadPc())
	console.Str(plat, mon.Hello)

	platform.DelayPoll(plat, mon.Budget, func() {
		mon.Poll()
	})

	mon.Reporter.Check()
	mon.Cycles++

	if mon.Verbose {
		log.Printf("monitor: cycle %d, leds 0x%02x, %d echoed", mon.Cycles, mon.Leds, mon.Echoed)
	}
}

// Run steps the monitor until ctx is done. Cancellation is only noticed
// between cycles, so it can take up to one Budget to return.
func (mon *Monitor) Run(ctx context.Context) (err error) {
	if mon.State == INIT {
		mon.Start()
	}

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		mon.Step()
	}
}
