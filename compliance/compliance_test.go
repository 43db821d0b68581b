package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	assert := assert.New(t)

	var rep Reporter = Noop{}

	assert.NotPanics(func() {
		rep.Init()
		rep.WriteStr("Starting\r\n")
		rep.Check()
		rep.AssertGprEq(5, 0xdeadbeef)
		rep.AssertSfprEq(1, 5, 0x3f800000)
		rep.AssertDfprEq(2, 5, 0x3ff0000000000000)
	})

	assert.Equal(Noop{}, rep)
}
