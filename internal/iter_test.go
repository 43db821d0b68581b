package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]string{"CLOCK_KHZ": "12000"}
	b := map[string]string{"CSR_LEDS": "0xbc1", "CLOCK_KHZ": "1"}

	merged := maps.Collect(IterSeq2Concat(maps.All(a), nil, maps.All(b)))
	assert.Equal(map[string]string{"CLOCK_KHZ": "1", "CSR_LEDS": "0xbc1"}, merged)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}
