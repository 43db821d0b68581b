package config

import (
	"slices"
)

// Validate checks profile correctness.
// It MUST NOT mutate the profile; unset fields are valid.
func Validate(p *Profile) error {
	// ------------------------------------------------------------
	// MONITOR
	// ------------------------------------------------------------

	if p.Monitor.Echo != "" && !slices.Contains([]string{ECHO_INCREMENT, ECHO_HEX}, p.Monitor.Echo) {
		return &ErrField{Field: "monitor.echo", Value: p.Monitor.Echo, Err: ErrKindUnknown}
	}

	if p.Monitor.Budget != "" || p.Emulator.ClockKhz != 0 {
		budget := p.Monitor.Budget
		if budget == "" {
			budget = DEFAULT_BUDGET
		}
		khz := p.Emulator.ClockKhz
		if khz == 0 {
			khz = DEFAULT_CLOCK_KHZ
		}
		// The budget must fit the counter at the clock the profile runs.
		_, err := EvalBudget(budget, khz)
		if err != nil {
			return &ErrField{Field: "monitor.budget", Value: budget, Err: err}
		}
	}

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	tc := &p.Transport

	switch tc.Kind {
	case "", TRANSPORT_CONSOLE, TRANSPORT_TAPE:
	case TRANSPORT_SERIAL:
		if tc.Device == "" {
			return &ErrField{Field: "transport.device", Value: tc.Device, Err: ErrDeviceMissing}
		}
	default:
		return &ErrField{Field: "transport.kind", Value: tc.Kind, Err: ErrKindUnknown}
	}

	for _, field := range []struct {
		name  string
		value int
	}{
		{"transport.baud", tc.Baud},
		{"transport.timeout_ms", tc.TimeoutMs},
		{"transport.fifo_size", tc.FifoSize},
	} {
		if field.value < 0 {
			return &ErrField{Field: field.name, Value: field.value, Err: ErrNegative}
		}
	}

	// ------------------------------------------------------------
	// EMULATOR
	// ------------------------------------------------------------

	if p.Emulator.Clock != "" && !slices.Contains([]string{CLOCK_WALL, CLOCK_STEP}, p.Emulator.Clock) {
		return &ErrField{Field: "emulator.clock", Value: p.Emulator.Clock, Err: ErrKindUnknown}
	}

	return nil
}
