package croak

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestHere(t *testing.T) {
	location := Here()

	assert.Assert(t, strings.Contains(location.Function, "TestHere"), "got: %+v", location)
	assert.Assert(t, strings.HasSuffix(location.File, "croak_test.go"), "got: %+v", location)
	assert.Assert(t, location.Line > 0)

	// Go has no column information
	assert.Equal(t, location.Column, uint(0))
}

func TestPayloadConstructors(t *testing.T) {
	assert.Assert(t, Payload{}.Empty())
	assert.Assert(t, PayloadString("").Empty())
	assert.Assert(t, PayloadValue(nil).Empty())

	assert.DeepEqual(t, PayloadBytes([]byte("code=5")), PayloadString("code=5"),
		cmp.AllowUnexported(Payload{}))
	assert.DeepEqual(t, PayloadValue("code=5"), PayloadString("code=5"),
		cmp.AllowUnexported(Payload{}))
}

func TestPayloadValueRendersStructs(t *testing.T) {
	type state struct {
		Code int
	}

	payload := PayloadValue(state{Code: 5})
	assert.Assert(t, !payload.Empty())
	assert.Assert(t, strings.Contains(payload.Data(), "Code"), "got: %q", payload.Data())
	assert.Assert(t, strings.Contains(payload.Data(), "5"), "got: %q", payload.Data())
}

func TestReportEndToEnd(t *testing.T) {
	var output bytes.Buffer
	Configure(Options{Output: &output})
	defer Configure(Options{Output: &bytes.Buffer{}})

	Report("bad state", PayloadString("code=5"), Location{
		Function: "compute",
		File:     "calc.src",
		Line:     42,
	})

	pattern := regexp.MustCompile(
		`^\nthread with hash: '\d+' panicked with: 'bad state: code=5' at function: 'compute' \[calc\.src:42:unknown\]\n`)
	assert.Assert(t, pattern.MatchString(output.String()), "got: %q", output.String())
}
