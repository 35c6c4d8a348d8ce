//go:build !nobacktrace

package croak

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

// The wrapper in this package must not show up in reported stacks; frame #0
// is the Report() caller.
func TestReportedStackStartsAtCaller(t *testing.T) {
	var output bytes.Buffer
	Configure(Options{Output: &output})
	defer Configure(Options{Output: &bytes.Buffer{}})

	Report("x", Payload{}, Here())

	frameLines := regexp.MustCompile(`#\d+\t\t[^\n]*`).FindAllString(output.String(), -1)
	assert.Assert(t, len(frameLines) > 0, "got: %q", output.String())
	assert.Assert(t, strings.Contains(frameLines[0], "TestReportedStackStartsAtCaller"),
		"got: %q", frameLines[0])
	assert.Assert(t, !strings.Contains(output.String(), "croak.Report"), "got: %q", output.String())
}
