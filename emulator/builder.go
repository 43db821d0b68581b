package emulator

import (
	"github.com/ezrec/uartmon/config"
	"github.com/ezrec/uartmon/platform"
)

// Build creates an emulator from a normalized profile section, attached to u.
func Build(ec config.EmulatorConfig, u platform.UART) (emu *Emulator) {
	emu = &Emulator{
		ClockKhz:  ec.ClockKhz,
		Pc:        ec.Pc,
		TickCost:  ec.TickCost,
		WallClock: ec.Clock == config.CLOCK_WALL,
		UART:      u,
	}

	if emu.ClockKhz == 0 {
		emu.ClockKhz = CLOCK_KHZ
	}

	emu.Reset()

	return
}
