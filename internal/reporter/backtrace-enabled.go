//go:build !nobacktrace

package reporter

import "github.com/croak-go/croak/backtrace"

const backtraceCompiledIn = true

func defaultWalker() backtrace.Walker {
	return backtrace.CallersWalker{}
}
