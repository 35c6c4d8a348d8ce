// Public API for wiring croak panic reporting into your application.
//
// Report() is the whole point: hand it a message, an optional payload and a
// source location, and it writes one human readable diagnostic block to
// stderr, backtrace included, without ever failing and without interleaving
// with reports from other goroutines.
//
// Build with -tags nobacktrace to compile backtrace capture out entirely.
package croak

import (
	"runtime"
	"strings"

	"github.com/croak-go/croak/internal/reporter"
	"github.com/davecgh/go-spew/spew"
)

// Location points at the source of a panic. Zero Line or Column means
// unknown, and renders as such.
type Location struct {
	Function string
	File     string
	Line     uint
	Column   uint
}

// Here returns the location of its caller. Go's runtime has no column
// information, so Column is always unknown.
func Here() Location {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return Location{}
	}

	location := Location{File: file, Line: uint(line)}
	if function := runtime.FuncForPC(pc); function != nil {
		location.Function = function.Name()
	}
	return location
}

// Payload is opaque auxiliary data attached to a panic, distinct from the
// human readable message. The zero value is an empty payload.
type Payload struct {
	data string
}

func PayloadString(data string) Payload {
	return Payload{data}
}

func PayloadBytes(data []byte) Payload {
	return Payload{string(data)}
}

// PayloadValue renders an arbitrary value into a payload. Rendering happens
// here, at event creation time, so expensive values never run inside the
// report lock.
func PayloadValue(value any) Payload {
	if value == nil {
		return Payload{}
	}
	if text, ok := value.(string); ok {
		return Payload{text}
	}
	return Payload{strings.TrimSuffix(spew.Sdump(value), "\n")}
}

func (p Payload) Data() string {
	return p.data
}

func (p Payload) Empty() bool {
	return p.data == ""
}

// Report writes one panic report to the configured output, stderr by
// default. It blocks until any concurrently reporting goroutine is done,
// never returns an error and never panics; missing location fields and
// unresolvable stack frames degrade to placeholders.
//
// Known limitation: panicking into Report while the same goroutine is
// already reporting deadlocks. There is deliberately no re-entrancy guard;
// see the DESIGN notes.
func Report(message string, payload Payload, location Location) {
	defaultReporter.Report(message, payload.Data(), reporter.Location{
		Function: location.Function,
		File:     location.File,
		Line:     location.Line,
		Column:   location.Column,
	})
}
