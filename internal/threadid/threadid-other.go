//go:build !linux

package threadid

import (
	"bytes"
	"runtime"
	"strconv"
)

// identity is the goroutine id, parsed from the runtime.Stack header:
// "goroutine 123 [running]:". There is no portable thread id API, and the
// goroutine id identifies the panicking party just as well.
func identity() uint64 {
	var header [64]byte
	length := runtime.Stack(header[:], false)

	fields := bytes.Fields(header[:length])
	if len(fields) < 2 {
		return 0
	}

	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
