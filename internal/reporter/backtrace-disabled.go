//go:build nobacktrace

package reporter

import "github.com/croak-go/croak/backtrace"

// Built with -tags nobacktrace: reports stop after the headline. No
// backtrace header, no frames, and no missing-frames warning.
const backtraceCompiledIn = false

func defaultWalker() backtrace.Walker {
	return nil
}
