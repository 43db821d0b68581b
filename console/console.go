// Package console prints strings and numbers one byte at a time over a UART.
//
// None of the helpers buffer or allocate; each byte goes straight to the
// transmitter, so they block only as long as Send does.
package console

// Sender is the transmit half of a UART.
type Sender interface {
	Send(ch byte)
}

const hexDigits = "0123456789ABCDEF"

// Str sends s verbatim. A NUL byte ends the string early.
func Str(tx Sender, s string) {
	for n := range len(s) {
		ch := s[n]
		if ch == 0 {
			return
		}
		tx.Send(ch)
	}
}

// Int32 sends value in signed decimal without leading zeros.
//
// The magnitude is held in 64 bits, so math.MinInt32 prints correctly
// instead of overflowing on negation.
func Int32(tx Sender, value int32) {
	magnitude := int64(value)
	if magnitude < 0 {
		tx.Send('-')
		magnitude = -magnitude
	}

	base := int64(1_000_000_000)
	for range 9 {
		leading := magnitude / base
		base /= 10
		if leading > 0 {
			tx.Send(byte(leading%10) + '0')
		}
	}

	// The units digit is always sent.
	tx.Send(byte(magnitude%10) + '0')
}

// Hex32 sends value as exactly eight uppercase hex digits.
func Hex32(tx Sender, value uint32) {
	for shift := 28; shift >= 0; shift -= 4 {
		tx.Send(hexDigits[(value>>shift)&0xf])
	}
}

// Hex8 sends value as exactly two uppercase hex digits.
func Hex8(tx Sender, value uint8) {
	tx.Send(hexDigits[value>>4])
	tx.Send(hexDigits[value&0xf])
}
