// Bounded text rendering for panic reports.
package format

import (
	"strconv"

	"github.com/rivo/uniseg"
)

// Probably too much, but enough. This will at least hold a formatted 128 bit
// unsigned integer (40 digits).
const Size = 256

// Longest possible outputs of Uint and Hex
const maxDecimalDigits = 20
const maxHexDigits = 2 + 16

// Buffer renders primitive values into a fixed amount of space. It lives
// happily on the stack and never writes past its bound; values that don't fit
// are dropped or truncated, never torn across the boundary.
//
// The zero value is an empty buffer, ready for use.
type Buffer struct {
	arr    [Size]byte
	length int
}

func (b *Buffer) Reset() {
	b.length = 0
}

// Bytes is a view into the buffer, valid until the next append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.arr[:b.length]
}

// Uint appends value in decimal. If the worst-case rendering wouldn't fit,
// the value is dropped entirely rather than emitting half a number.
func (b *Buffer) Uint(value uint64) {
	if Size-b.length < maxDecimalDigits {
		return
	}
	b.length = len(strconv.AppendUint(b.arr[:b.length], value, 10))
}

// Hex appends value as a 0x prefixed address. Same overflow policy as Uint.
func (b *Buffer) Hex(value uint64) {
	if Size-b.length < maxHexDigits {
		return
	}
	b.arr[b.length] = '0'
	b.arr[b.length+1] = 'x'
	b.length += 2
	b.length = len(strconv.AppendUint(b.arr[:b.length], value, 16))
}

// String appends s, truncating on a grapheme cluster boundary if s doesn't
// fit. Truncating on cluster boundaries rather than byte boundaries means we
// never emit a torn rune or half an emoji.
func (b *Buffer) String(s string) {
	if len(s) <= Size-b.length {
		b.length += copy(b.arr[b.length:], s)
		return
	}

	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if b.length+len(cluster) > Size {
			return
		}
		b.length += copy(b.arr[b.length:], cluster)
	}
}
