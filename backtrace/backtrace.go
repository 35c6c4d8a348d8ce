// Stack walking for panic reports.
//
// A Walker produces stack frames lazily, innermost first. Each frame field is
// optional; a field that the walker can't fill in renders as a placeholder
// rather than failing the report.
package backtrace

import "runtime"

// Cap on how many frames one walk can produce. Bounds both report size and
// the time spent symbolizing mid-panic.
const MaxFrames = 64

// Frame is one call stack entry. Any of its fields may be absent, depending
// on what the walker could resolve.
type Frame struct {
	// Resolved symbol name, usually a fully qualified function name
	Symbol Option[string]

	// Instruction pointer
	IP Option[uintptr]

	// Stack pointer
	SP Option[uintptr]
}

// Walker hands frames to visit one at a time, innermost first, until there
// are no more frames, max frames have been produced, or visit returns false.
//
// The skip innermost frames are dropped before visiting starts, so that
// reporting machinery can keep itself out of the reported stack.
//
// A walk is restartable per call but not resumable; every Walk starts over
// from the current stack top.
type Walker interface {
	Walk(skip int, max int, visit func(frame Frame) bool)
}

// CallersWalker walks the calling goroutine's stack using the Go runtime.
//
// The Go runtime does not expose stack pointers, so SP is always absent in
// the frames this walker produces.
type CallersWalker struct{}

func (CallersWalker) Walk(skip int, max int, visit func(frame Frame) bool) {
	if max <= 0 {
		return
	}

	pcs := make([]uintptr, max)

	// +2 drops runtime.Callers itself and this method
	count := runtime.Callers(skip+2, pcs)
	if count == 0 {
		return
	}

	// CallersFrames can expand one pc into several logical frames where the
	// compiler inlined calls, so max needs enforcing here too
	produced := 0
	frames := runtime.CallersFrames(pcs[:count])
	for {
		frame, more := frames.Next()

		resolved := Frame{}
		if frame.Function != "" {
			resolved.Symbol = Some(frame.Function)
		}
		if frame.PC != 0 {
			resolved.IP = Some(frame.PC)
		}

		if !visit(resolved) {
			return
		}

		produced++
		if produced >= max {
			return
		}
		if !more {
			return
		}
	}
}
