package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"gotest.tools/v3/assert"
)

func TestUint(t *testing.T) {
	var buf Buffer
	buf.Uint(12345)
	assert.Equal(t, string(buf.Bytes()), "12345")

	buf.Reset()
	buf.Uint(0)
	assert.Equal(t, string(buf.Bytes()), "0")

	buf.Reset()
	buf.Uint(18446744073709551615)
	assert.Equal(t, string(buf.Bytes()), "18446744073709551615")
}

func TestHex(t *testing.T) {
	var buf Buffer
	buf.Hex(0x2a)
	assert.Equal(t, string(buf.Bytes()), "0x2a")

	buf.Reset()
	buf.Hex(0)
	assert.Equal(t, string(buf.Bytes()), "0x0")
}

func TestAppendsAccumulate(t *testing.T) {
	var buf Buffer
	buf.String("#")
	buf.Uint(3)
	buf.String(": ")
	buf.Hex(0x10)
	assert.Equal(t, string(buf.Bytes()), "#3: 0x10")

	buf.Reset()
	assert.Equal(t, len(buf.Bytes()), 0)
}

func TestStringThatFits(t *testing.T) {
	var buf Buffer
	buf.String("hello")
	assert.Equal(t, string(buf.Bytes()), "hello")
}

func TestStringTruncatesOnClusterBoundary(t *testing.T) {
	// "é" as e + combining acute accent, 3 bytes and one grapheme cluster
	cluster := "é"
	var buf Buffer
	buf.String(strings.Repeat(cluster, 200))

	// 85 whole clusters fit in 256 bytes, the 86th must be dropped whole
	assert.Equal(t, len(buf.Bytes()), 255)
	assert.Assert(t, utf8.Valid(buf.Bytes()))
	assert.Assert(t, strings.HasSuffix(string(buf.Bytes()), cluster))
}

func TestStringTruncatesAsciiAtCapacity(t *testing.T) {
	var buf Buffer
	buf.String(strings.Repeat("x", 250))
	buf.String("abcdefghij")

	assert.Equal(t, len(buf.Bytes()), Size)
	assert.Assert(t, strings.HasSuffix(string(buf.Bytes()), "abcdef"))
}

func TestUintDroppedWhenNearlyFull(t *testing.T) {
	var buf Buffer
	buf.String(strings.Repeat("x", 250))

	// Not enough room for a worst case number, so nothing gets written
	buf.Uint(1)
	assert.Equal(t, len(buf.Bytes()), 250)

	buf.Hex(1)
	assert.Equal(t, len(buf.Bytes()), 250)
}
