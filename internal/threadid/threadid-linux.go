//go:build linux

package threadid

import "golang.org/x/sys/unix"

// identity is the kernel task id of the thread running the calling
// goroutine. Goroutines migrate between threads, but a panicking goroutine
// stays put for the duration of one report, which is all we label.
func identity() uint64 {
	return uint64(unix.Gettid())
}
