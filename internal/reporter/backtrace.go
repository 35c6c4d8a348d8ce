package reporter

import (
	"io"

	"github.com/croak-go/croak/backtrace"
	"github.com/croak-go/croak/internal/format"
)

const framesUnavailableWarning = "WARNING >> The stack frames couldn't be " +
	"identified, debug information was possibly stripped, unavailable, or " +
	"elided by compiler\n"

// Caller must hold r.lock.
func (r *Reporter) putBacktrace(out io.Writer) {
	put(out, "\nBacktrace:\nip: Instruction Pointer,  sp: Stack Pointer\n\n")

	walker := r.walker
	if walker == nil {
		walker = defaultWalker()
	}

	frames := 0
	if walker != nil {
		walker.Walk(r.frameSkip, backtrace.MaxFrames, func(frame backtrace.Frame) bool {
			putFrame(out, frames, frame)
			frames++

			// Cap here as well, in case the walker ignores its max argument
			return frames < backtrace.MaxFrames
		})
	}

	if frames <= 0 {
		put(out, framesUnavailableWarning)
	}

	put(out, "\n")
}

func putFrame(out io.Writer, index int, frame backtrace.Frame) {
	var buf format.Buffer

	put(out, "#")
	buf.Uint(uint64(index))
	putBytes(out, buf.Bytes())
	put(out, "\t\t")

	frame.Symbol.Render(func(symbol string) {
		buf.Reset()
		buf.String(symbol)
		putBytes(out, buf.Bytes())
	}, func() {
		put(out, unknown)
	})

	put(out, "\t (ip: ")
	putAddress(out, &buf, frame.IP)
	put(out, ", sp: ")
	putAddress(out, &buf, frame.SP)
	put(out, ")\n")
}

func putAddress(out io.Writer, buf *format.Buffer, address backtrace.Option[uintptr]) {
	address.Render(func(address uintptr) {
		buf.Reset()
		buf.Hex(uint64(address))
		putBytes(out, buf.Bytes())
	}, func() {
		put(out, unknown)
	})
}
