// Package platform describes the leaf capabilities the monitor is built on.
//
// A platform provides a free running cycle counter, numerically addressed
// control/status registers (CSRs), the current program counter, and a byte
// UART with blocking send and non-blocking receive. On hardware these are
// single instructions or memory mapped registers; on the host they are
// supplied by the emulator package and the uart transports.
package platform
