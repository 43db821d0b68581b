package console

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder collects everything sent.
type recorder struct {
	bytes.Buffer
}

func (r *recorder) Send(ch byte) {
	r.WriteByte(ch)
}

func TestStr(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input  string
		output string
	}){
		{"", ""},
		{"Starting\r\n", "Starting\r\n"},
		{" Hello5\r\n", " Hello5\r\n"},
		{"cut\x00off", "cut"},
	}

	for _, entry := range table {
		tx := &recorder{}
		Str(tx, entry.input)
		assert.Equal(entry.output, tx.String(), strconv.Quote(entry.input))
	}
}

func TestInt32(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input  int32
		output string
	}){
		{0, "0"},
		{-5, "-5"},
		{7, "7"},
		{10, "10"},
		{105, "105"},
		{1000000000, "1000000000"},
		{-1000000007, "-1000000007"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
	}

	for _, entry := range table {
		tx := &recorder{}
		Int32(tx, entry.input)
		assert.Equal(entry.output, tx.String(), entry.output)
	}
}

func TestHex32(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input  uint32
		output string
	}){
		{0, "00000000"},
		{0x0000ABCD, "0000ABCD"},
		{0xdeadbeef, "DEADBEEF"},
		{math.MaxUint32, "FFFFFFFF"},
		{0x00010000, "00010000"},
	}

	for _, entry := range table {
		tx := &recorder{}
		Hex32(tx, entry.input)
		assert.Equal(entry.output, tx.String())
	}
}

func TestHex8(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		tx := &recorder{}
		Hex8(tx, uint8(value))
		assert.Len(tx.String(), 2)

		parsed, err := strconv.ParseUint(tx.String(), 16, 8)
		assert.NoError(err)
		assert.Equal(uint64(value), parsed)
	}
}

func FuzzConsole(f *testing.F) {
	f.Add(int32(0), uint32(0))
	f.Add(int32(-5), uint32(0xabcd))
	f.Add(int32(math.MinInt32), uint32(math.MaxUint32))
	f.Add(int32(math.MaxInt32), uint32(1))

	f.Fuzz(func(t *testing.T, decimal int32, hex uint32) {
		assert := assert.New(t)

		tx := &recorder{}
		Int32(tx, decimal)
		text := tx.String()
		assert.Equal(strconv.Itoa(int(decimal)), text)
		parsed, err := strconv.ParseInt(text, 10, 32)
		assert.NoError(err)
		assert.Equal(int64(decimal), parsed)

		tx = &recorder{}
		Hex32(tx, hex)
		text = tx.String()
		assert.Len(text, 8)
		for _, ch := range text {
			assert.Contains(hexDigits, string(ch))
		}
		parsed_hex, err := strconv.ParseUint(text, 16, 32)
		assert.NoError(err)
		assert.Equal(uint64(hex), parsed_hex)
	})
}
