package monitor

// State is the monitor's position in its startup sequence.
type State int

//go:generate go tool stringer -type=State,Echo
const (
	INIT   = State(0) // Nothing written yet.
	BANNER = State(1) // Banner printed, LEDs at BannerLeds.
	CYCLE  = State(2) // Blinking and echoing. Never left.
)

// Echo selects how received bytes are answered.
type Echo int

const (
	ECHO_INCREMENT = Echo(0) // Send the byte plus one.
	ECHO_HEX       = Echo(1) // Send the byte as two hex digits.
)
