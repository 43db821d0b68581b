// Package config loads monitor profiles: which transport to use, what the
// monitor prints and blinks, and how the host emulator keeps time.
package config

// Transport kinds.
const (
	TRANSPORT_CONSOLE = "console" // Host terminal, raw mode.
	TRANSPORT_SERIAL  = "serial"  // Host serial line.
	TRANSPORT_TAPE    = "tape"    // Files or pipes, read synchronously.
)

// Echo modes.
const (
	ECHO_INCREMENT = "increment" // Echo each byte plus one.
	ECHO_HEX       = "hex"       // Echo each byte as two hex digits.
)

// Emulator clock sources.
const (
	CLOCK_WALL = "wall" // Counter follows host time at clock_khz.
	CLOCK_STEP = "step" // Counter advances tick_cost per read.
)

// Defaults, matching the RudolV UART test program.
const (
	DEFAULT_BANNER      = "Starting\r\n"
	DEFAULT_HELLO       = " Hello5\r\n"
	DEFAULT_INIT_LEDS   = uint8(0x03)
	DEFAULT_BANNER_LEDS = uint8(0xaa)
	DEFAULT_CYCLE_MASK  = uint8(0xa4)
	DEFAULT_BUDGET      = "CLOCK_KHZ << 10"
	DEFAULT_ESCAPE      = uint8(0x1d) // Ctrl-]
	DEFAULT_CLOCK_KHZ   = uint32(12000)
	DEFAULT_TICK_COST   = uint32(1)
	DEFAULT_TAPE        = "-"
)

type Profile struct {
	Monitor   MonitorConfig   `yaml:"monitor"`
	Transport TransportConfig `yaml:"transport"`
	Emulator  EmulatorConfig  `yaml:"emulator"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	Banner     *string `yaml:"banner"`      // Printed once at startup.
	Hello      *string `yaml:"hello"`       // Printed after the PC every cycle.
	InitLeds   *uint8  `yaml:"init_leds"`   // LEDs before the banner.
	BannerLeds *uint8  `yaml:"banner_leds"` // LEDs after the banner.
	CycleMask  *uint8  `yaml:"cycle_mask"`  // XORed into the LEDs every cycle.
	Budget     string  `yaml:"budget"`      // Ticks per cycle, as an expression of CLOCK_KHZ.
	Echo       string  `yaml:"echo"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Kind      string `yaml:"kind"`
	Device    string `yaml:"device"`     // serial
	Baud      int    `yaml:"baud"`       // serial
	TimeoutMs int    `yaml:"timeout_ms"` // serial
	FifoSize  int    `yaml:"fifo_size"`  // serial, console
	Escape    *uint8 `yaml:"escape"`     // console; 0 disables
	Input     string `yaml:"input"`      // tape; "-" is stdin
	Output    string `yaml:"output"`     // tape; "-" is stdout
}

// ---- EMULATOR ----

type EmulatorConfig struct {
	ClockKhz uint32 `yaml:"clock_khz"`
	Clock    string `yaml:"clock"`
	TickCost uint32 `yaml:"tick_cost"`
	Pc       uint32 `yaml:"pc"`
}

// Default returns the built-in profile.
func Default() (p *Profile) {
	p = &Profile{}
	Normalize(p)
	return
}
