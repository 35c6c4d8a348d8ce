package croak

import (
	"io"

	"github.com/croak-go/croak/backtrace"
	"github.com/croak-go/croak/internal/crashfile"
	"github.com/croak-go/croak/internal/reporter"
)

// The process wide reporter. Initialized once, never torn down.
var defaultReporter = newDefaultReporter()

func newDefaultReporter() *reporter.Reporter {
	r := reporter.New()

	// +1 keeps the Report wrapper above out of reported stacks
	r.SetFrameSkip(reporter.DefaultFrameSkip + 1)

	return r
}

// Options adjust the process wide reporter. Zero valued fields keep their
// current settings.
type Options struct {
	// Where reports go. Defaults to stderr.
	Output io.Writer

	// If set, every report is also written to this file. Names ending in
	// ".gz" or ".xz" are compressed. Set to DefaultCrashFile() for a
	// timestamped file under the user's state directory. Strictly best
	// effort; the stderr report is unaffected by crash file problems.
	CrashFile string

	// Show source code around the panic location, after the backtrace.
	// Requires the location's file to be readable at report time, so this is
	// mostly useful during development.
	SourceContext bool

	// Overrides backtrace capture. Mostly for tests.
	Walker backtrace.Walker
}

func Configure(options Options) {
	if options.Output != nil {
		defaultReporter.SetOutput(options.Output)
	}
	if options.CrashFile != "" {
		defaultReporter.SetCrashFile(options.CrashFile)
	}
	if options.SourceContext {
		defaultReporter.SetSourceContext(true)
	}
	if options.Walker != nil {
		defaultReporter.SetWalker(options.Walker)
	}
}

// DefaultCrashFile returns a timestamped crash file path under the user's
// state directory, for use with Options.CrashFile.
func DefaultCrashFile() string {
	return crashfile.DefaultPath()
}

// Logger receives diagnostics about the reporting machinery itself, for
// example crash file write failures. The reports proper always go to the
// reporter's output, never here.
type Logger interface {
	Debug(message string)
	Info(message string)
	Error(message string)
}

// SetLogger routes machinery diagnostics somewhere visible. The default is
// to drop them; a last-resort reporter shouldn't chat on anyone's log by
// default.
func SetLogger(logger Logger) {
	defaultReporter.SetLogger(logger)
}
