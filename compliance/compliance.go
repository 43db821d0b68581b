// Package compliance provides the reporting hooks used by architecture
// compliance tests, and a reporter that does nothing.
//
// Test code calls the hooks unconditionally. Platforms without a reporting
// backend install Noop, which lets the same test sources build and run.
package compliance

// Reporter receives compliance test progress and register assertions.
type Reporter interface {
	// Init prepares the reporting backend.
	Init()
	// WriteStr emits a progress message.
	WriteStr(s string)
	// Check marks a checkpoint in the test.
	Check()
	// AssertGprEq asserts general purpose register reg holds value.
	AssertGprEq(reg int, value uint32)
	// AssertSfprEq asserts single precision register freg holds the bit
	// pattern value, using scratch as a temporary.
	AssertSfprEq(freg int, scratch int, value uint32)
	// AssertDfprEq asserts double precision register dreg holds the bit
	// pattern value, using scratch as a temporary.
	AssertDfprEq(dreg int, scratch int, value uint64)
}

// Noop is a Reporter whose hooks have no effect.
type Noop struct{}

var _ Reporter = Noop{}

func (Noop) Init()                                            {}
func (Noop) WriteStr(s string)                                {}
func (Noop) Check()                                           {}
func (Noop) AssertGprEq(reg int, value uint32)                {}
func (Noop) AssertSfprEq(freg int, scratch int, value uint32) {}
func (Noop) AssertDfprEq(dreg int, scratch int, value uint64) {}
