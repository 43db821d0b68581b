//go:build !unix

package uart

// ConsoleConfig selects the host terminal as the UART.
type ConsoleConfig struct {
	FifoSize int
	Escape   byte
	OnEscape func()
}

// OpenConsole is not available on this host.
func OpenConsole(cfg ConsoleConfig) (port *Port, err error) {
	err = ErrConsoleUnsupported
	return
}
