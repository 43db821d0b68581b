package platform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// counter advances by step on every read.
type counter struct {
	value uint32
	step  uint32
	reads int
}

func (c *counter) ReadCycle() (value uint32) {
	value = c.value
	c.value += c.step
	c.reads++
	return
}

func TestDelayZero(t *testing.T) {
	assert := assert.New(t)

	clk := &counter{value: 100, step: 1}
	Delay(clk, 0)

	// One snapshot, one comparison.
	assert.Equal(2, clk.reads)
}

func TestDelayElapsed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		start uint32
		step  uint32
		ticks uint32
	}){
		{"unit", 0, 1, 1000},
		{"coarse", 0, 7, 1000},
		{"wrap", math.MaxUint32 - 10, 3, 100},
		{"wrap_exact", math.MaxUint32, 1, 1},
		{"large", 12, 1 << 20, 12000 << 10},
	}

	for _, entry := range table {
		clk := &counter{value: entry.start, step: entry.step}
		Delay(clk, entry.ticks)

		// The last read is the one that ended the wait.
		last := clk.value - entry.step
		elapsed := last - entry.start
		assert.GreaterOrEqual(elapsed, entry.ticks, entry.name)
		assert.Less(elapsed-entry.ticks, entry.step, entry.name)
	}
}

func TestDelayPoll(t *testing.T) {
	assert := assert.New(t)

	clk := &counter{step: 10}
	polls := 0
	DelayPoll(clk, 100, func() { polls++ })

	assert.Equal(9, polls)
}

func TestOneSecond(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(12000*1024), OneSecond(12000))
	assert.Equal(uint32(0), OneSecond(0))
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := map[string]string{}
	for key, value := range Defines() {
		defs[key] = value
	}

	assert.Equal("0xbc1", defs["CSR_LEDS"])
	assert.Equal("0xfc0", defs["CSR_CLOCK_KHZ"])
	assert.Equal("-1", defs["RECEIVE_NONE"])
}
