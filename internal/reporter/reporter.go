// Package reporter turns panic events into diagnostics on one shared output
// stream.
//
// Reports from concurrent goroutines never interleave; one lock is held for
// the whole duration of a report. Which report goes first is undefined.
//
// Known limitation: a panic raised while the calling goroutine is already
// inside Report deadlocks on the report lock. Reporting is the last thing
// that runs before a fatal trace, and guarding against a panicking panic
// handler isn't worth the complexity. See reporter_test.go for where the
// hazard is and isn't.
package reporter

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/croak-go/croak/backtrace"
	"github.com/croak-go/croak/internal/crashfile"
	"github.com/croak-go/croak/internal/excerpt"
	"github.com/croak-go/croak/internal/format"
	"github.com/croak-go/croak/internal/threadid"
)

// Number of reporting-machinery frames between a caller of Report and the
// stack walker. With this skip, frame #0 is the panic site.
const DefaultFrameSkip = 2

const unknown = "unknown"

// Location points at the source of a panic. Zero line or column means
// unknown.
type Location struct {
	Function string
	File     string
	Line     uint
	Column   uint
}

// Reporter writes panic reports. All fields are process-lifetime
// configuration; there is no per-report state and no teardown.
type Reporter struct {
	lock sync.Mutex

	out       io.Writer
	walker    backtrace.Walker
	frameSkip int

	// If set, every report is also written to this file. ".gz" and ".xz"
	// names are compressed.
	crashFile string

	// Render source code around the panic location, after the backtrace
	sourceContext bool

	log Logger
}

func New() *Reporter {
	return &Reporter{
		out:       os.Stderr,
		frameSkip: DefaultFrameSkip,
		log:       &NoopLogger{},
	}
}

func (r *Reporter) SetOutput(out io.Writer) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.out = out
}

// SetWalker overrides how stack frames are captured. nil restores the
// default.
func (r *Reporter) SetWalker(walker backtrace.Walker) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.walker = walker
}

// SetFrameSkip adjusts for wrappers between the panic site and Report. Every
// wrapper frame adds one.
func (r *Reporter) SetFrameSkip(frameSkip int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frameSkip = frameSkip
}

func (r *Reporter) SetCrashFile(filename string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.crashFile = filename
}

func (r *Reporter) SetSourceContext(enabled bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.sourceContext = enabled
}

func (r *Reporter) SetLogger(logger Logger) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if logger == nil {
		logger = &NoopLogger{}
	}
	r.log = logger
}

// Report writes one panic report. It never fails and never panics; anything
// that can't be rendered degrades to a placeholder, and write errors are
// swallowed. The headline is flushed before backtrace capture starts, so it
// survives even if the process is killed mid-report.
//
// Blocks until any concurrently reporting goroutine is done. Calling Report
// from inside Report deadlocks, see the package docs.
func (r *Reporter) Report(message string, payload string, location Location) {
	// Before taking the lock, so a slow hash can never stall other reporters
	hash := threadid.Hash()

	r.lock.Lock()
	defer r.lock.Unlock()

	out := r.out
	var mirror *bytes.Buffer
	if r.crashFile != "" {
		mirror = &bytes.Buffer{}
		out = io.MultiWriter(r.out, mirror)
	}

	var buf format.Buffer

	put(out, "\nthread with hash: '")
	buf.Uint(hash)
	putBytes(out, buf.Bytes())

	put(out, "' panicked with: '")
	put(out, message)
	if payload != "" {
		put(out, ": ")
		put(out, payload)
	}
	put(out, "'")

	put(out, " at function: '")
	put(out, location.Function)
	put(out, "' [")
	put(out, location.File)
	put(out, ":")
	putLineOrColumn(out, &buf, location.Line)
	put(out, ":")
	putLineOrColumn(out, &buf, location.Column)
	put(out, "]\n")

	flush(r.out)

	if backtraceCompiledIn {
		r.putBacktrace(out)
	}

	if r.sourceContext && location.File != "" && location.Line != 0 {
		err := excerpt.Render(out, location.File, location.Line)
		if err != nil {
			// Degraded information, not a reportable failure
			r.log.Debug("Source context unavailable: " + err.Error())
		}
	}

	if mirror != nil {
		r.writeCrashFile(mirror.Bytes())
	}
}

func (r *Reporter) writeCrashFile(report []byte) {
	file, err := crashfile.ZCreate(r.crashFile)
	if err != nil {
		r.log.Error("Failed to create crash file: " + err.Error())
		return
	}

	_, err = file.Write(report)
	if err != nil {
		r.log.Error("Failed to write crash file: " + err.Error())
	}

	err = file.Close()
	if err != nil {
		r.log.Error("Failed to close crash file: " + err.Error())
		return
	}

	r.log.Info("Crash report mirrored to " + r.crashFile)
}

func putLineOrColumn(out io.Writer, buf *format.Buffer, number uint) {
	if number == 0 {
		put(out, unknown)
		return
	}

	buf.Reset()
	buf.Uint(uint64(number))
	putBytes(out, buf.Bytes())
}

// Write errors are swallowed on purpose. A panic report that can't reach its
// stream has nowhere to report that to.
func put(out io.Writer, s string) {
	_, _ = io.WriteString(out, s)
}

func putBytes(out io.Writer, b []byte) {
	_, _ = out.Write(b)
}

func flush(out io.Writer) {
	switch flushable := out.(type) {
	case interface{ Sync() error }:
		_ = flushable.Sync()
	case interface{ Flush() error }:
		_ = flushable.Flush()
	}
}
