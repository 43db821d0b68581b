package config

// Normalize fills unset fields with defaults.
// It MUST be called only after Validate().
func Normalize(p *Profile) {
	if p == nil {
		return
	}

	mc := &p.Monitor
	if mc.Banner == nil {
		mc.Banner = ref(DEFAULT_BANNER)
	}
	if mc.Hello == nil {
		mc.Hello = ref(DEFAULT_HELLO)
	}
	if mc.InitLeds == nil {
		mc.InitLeds = ref(DEFAULT_INIT_LEDS)
	}
	if mc.BannerLeds == nil {
		mc.BannerLeds = ref(DEFAULT_BANNER_LEDS)
	}
	if mc.CycleMask == nil {
		mc.CycleMask = ref(DEFAULT_CYCLE_MASK)
	}
	if mc.Budget == "" {
		mc.Budget = DEFAULT_BUDGET
	}
	if mc.Echo == "" {
		mc.Echo = ECHO_INCREMENT
	}

	tc := &p.Transport
	if tc.Kind == "" {
		tc.Kind = TRANSPORT_CONSOLE
	}
	if tc.Escape == nil {
		tc.Escape = ref(DEFAULT_ESCAPE)
	}
	if tc.Input == "" {
		tc.Input = DEFAULT_TAPE
	}
	if tc.Output == "" {
		tc.Output = DEFAULT_TAPE
	}

	// Baud, timeout and queue depth are left at zero; the transports
	// apply their own defaults.

	ec := &p.Emulator
	if ec.ClockKhz == 0 {
		ec.ClockKhz = DEFAULT_CLOCK_KHZ
	}
	if ec.Clock == "" {
		ec.Clock = CLOCK_WALL
	}
	if ec.TickCost == 0 {
		ec.TickCost = DEFAULT_TICK_COST
	}
}

func ref[T any](value T) *T {
	return &value
}
