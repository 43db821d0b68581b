package monitor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uartmon/compliance"
	"github.com/ezrec/uartmon/config"
	"github.com/ezrec/uartmon/platform"
)

// board is a scripted platform.
type board struct {
	cycle uint32
	step  uint32
	khz   uint32
	pc    uint32

	leds   []uint32 // Every CSR_LEDS write.
	input  []int    // Receive results, in order.
	output bytes.Buffer
}

var _ platform.Platform = (*board)(nil)

func newBoard() *board {
	return &board{step: 1, khz: 1, pc: 0x0000abcd}
}

func (b *board) ReadCycle() (cycle uint32) {
	cycle = b.cycle
	b.cycle += b.step
	return
}

func (b *board) ReadCsr(id uint16) uint32 {
	if id == platform.CSR_CLOCK_KHZ {
		return b.khz
	}
	return 0
}

func (b *board) WriteCsr(id uint16, value uint32) {
	if id == platform.CSR_LEDS {
		b.leds = append(b.leds, value)
	}
}

func (b *board) ReadPc() uint32 {
	return b.pc
}

func (b *board) Send(ch byte) {
	b.output.WriteByte(ch)
}

func (b *board) NonblockingReceive() (ch int) {
	if len(b.input) == 0 {
		return platform.RECEIVE_NONE
	}
	ch = b.input[0]
	b.input = b.input[1:]
	return
}

// checker cancels a context after a number of cycles.
type checker struct {
	compliance.Noop
	checks int
	after  int
	cancel context.CancelFunc
	banner string
}

func (c *checker) WriteStr(s string) {
	c.banner += s
}

func (c *checker) Check() {
	c.checks++
	if c.checks == c.after {
		c.cancel()
	}
}

func TestStart(t *testing.T) {
	assert := assert.New(t)

	b := newBoard()
	b.khz = 12000
	mon := NewMonitor(b, DefaultConfig())
	assert.Equal(INIT, mon.State)

	mon.Start()

	assert.Equal(BANNER, mon.State)
	assert.Equal(uint32(12000<<10), mon.Budget)
	assert.Equal([]uint32{0x03, 0xaa}, b.leds)
	assert.Equal(uint8(0xaa), mon.Leds)
	assert.Equal("Starting\r\n", b.output.String())
}

func TestStep(t *testing.T) {
	assert := assert.New(t)

	b := newBoard()
	mon := NewMonitor(b, DefaultConfig())

	// Step from INIT performs the banner first.
	mon.Step()
	assert.Equal(CYCLE, mon.State)
	assert.Equal([]uint32{0x03, 0xaa, 0x0e}, b.leds)
	assert.Equal("Starting\r\n0000ABCD Hello5\r\n", b.output.String())
	assert.Equal(1, mon.Cycles)

	mon.Step()
	assert.Equal([]uint32{0x03, 0xaa, 0x0e, 0xaa}, b.leds)
	assert.Equal("Starting\r\n0000ABCD Hello5\r\n0000ABCD Hello5\r\n", b.output.String())
	assert.Equal(2, mon.Cycles)
}

func TestStepWaitsBudget(t *testing.T) {
	assert := assert.New(t)

	b := newBoard()
	b.step = 8
	mon := NewMonitor(b, DefaultConfig())
	mon.Start()

	before := b.cycle
	mon.Step()

	// Snapshot plus at least 1024 ticks of reads, overshooting by less
	// than one read.
	elapsed := b.cycle - before - b.step
	assert.GreaterOrEqual(elapsed, uint32(1024))
	assert.Less(elapsed, uint32(1024)+b.step)
}

func TestStepEcho(t *testing.T) {
	assert := assert.New(t)

	b := newBoard()
	b.input = []int{'A', platform.RECEIVE_NONE, 'a', 0, -7, 'y'}
	mon := NewMonitor(b, DefaultConfig())

	mon.Step()

	assert.Equal("Starting\r\n0000ABCD Hello5\r\nBbz", b.output.String())
	assert.Equal(3, mon.Echoed)
	assert.Empty(b.input)
}

func TestPollIncrement(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  int
		ok     bool
		output []byte
	}){
		{"letter", 'A', true, []byte{'B'}},
		{"one", 1, true, []byte{2}},
		{"wrap", 0xff, true, []byte{0x00}},
		{"nul", 0, false, nil},
		{"none", platform.RECEIVE_NONE, false, nil},
		{"error", -42, false, nil},
	}

	for _, entry := range table {
		b := newBoard()
		b.input = []int{entry.input}
		mon := NewMonitor(b, DefaultConfig())

		ok := mon.Poll()
		assert.Equal(entry.ok, ok, entry.name)
		assert.Equal(entry.output, b.output.Bytes(), entry.name)
	}
}

func TestPollHex(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Echo = ECHO_HEX

	b := newBoard()
	b.input = []int{'A', 0xff, 0x100, 0, 0x0a}
	mon := NewMonitor(b, cfg)

	for mon.Poll() || len(b.input) > 0 {
	}

	assert.Equal("41FF*000A", b.output.String())
	assert.Equal(5, mon.Echoed)
}

func TestPollHexNul(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Echo = ECHO_HEX

	b := newBoard()
	b.input = []int{0x00, platform.RECEIVE_NONE}
	mon := NewMonitor(b, cfg)

	assert.True(mon.Poll())
	assert.False(mon.Poll())
	assert.Equal("00", b.output.String())
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := newBoard()
	rep := &checker{after: 3, cancel: cancel}
	mon := NewMonitor(b, DefaultConfig())
	mon.Reporter = rep

	err := mon.Run(ctx)

	assert.ErrorIs(err, context.Canceled)
	assert.Equal(3, mon.Cycles)
	assert.Equal(3, rep.checks)
	assert.Equal("Starting\r\n", rep.banner)
	assert.Equal([]uint32{0x03, 0xaa, 0x0e, 0xaa, 0x0e}, b.leds)
}

func TestRunCancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := newBoard()
	mon := NewMonitor(b, DefaultConfig())

	err := mon.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(BANNER, mon.State)
	assert.Equal(0, mon.Cycles)
}

func TestStateString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("INIT", INIT.String())
	assert.Equal("BANNER", BANNER.String())
	assert.Equal("CYCLE", CYCLE.String())
	assert.Equal("State(7)", State(7).String())
	assert.Equal("ECHO_HEX", ECHO_HEX.String())
	assert.Equal("Echo(-1)", Echo(-1).String())
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	hello := " hi\r\n"
	mc := config.MonitorConfig{
		Hello:  &hello,
		Budget: "CLOCK_KHZ * 3",
		Echo:   config.ECHO_HEX,
	}

	b := newBoard()
	b.khz = 5
	b.input = []int{'!'}
	mon := Build(b, mc)
	mon.Step()

	assert.Equal(uint32(15), mon.Budget)
	assert.Equal(ECHO_HEX, mon.Echo)
	assert.Equal("Starting\r\n0000ABCD hi\r\n21", b.output.String())
}

func TestBuildBudgetFallback(t *testing.T) {
	assert := assert.New(t)

	b := newBoard()
	b.khz = 2
	mon := Build(b, config.MonitorConfig{Budget: "NOT_DEFINED"})
	mon.Start()

	assert.Equal(platform.OneSecond(2), mon.Budget)
}
