package excerpt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "source.go")
	contents := strings.Join(lines, "\n") + "\n"
	assert.NilError(t, os.WriteFile(filename, []byte(contents), 0600))
	return filename
}

func TestRenderWindow(t *testing.T) {
	filename := writeLines(t,
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliett")

	var output bytes.Buffer
	err := Render(&output, filename, 5)
	assert.NilError(t, err)

	// Window is the panic line plus three lines of context each way
	assert.Assert(t, strings.Contains(output.String(), "bravo"), "got: %q", output.String())
	assert.Assert(t, strings.Contains(output.String(), "hotel"), "got: %q", output.String())
	assert.Assert(t, !strings.Contains(output.String(), "alpha"), "got: %q", output.String())
	assert.Assert(t, !strings.Contains(output.String(), "india"), "got: %q", output.String())

	// The panic line is marked
	assert.Assert(t, strings.Contains(output.String(), ">    5 | echo"), "got: %q", output.String())
	assert.Assert(t, strings.Contains(output.String(), "     4 | delta"), "got: %q", output.String())
}

func TestRenderAtTopOfFile(t *testing.T) {
	filename := writeLines(t, "alpha", "bravo", "charlie", "delta", "echo")

	var output bytes.Buffer
	err := Render(&output, filename, 1)
	assert.NilError(t, err)

	assert.Assert(t, strings.Contains(output.String(), ">    1 | alpha"), "got: %q", output.String())
	assert.Assert(t, strings.Contains(output.String(), "delta"), "got: %q", output.String())
	assert.Assert(t, !strings.Contains(output.String(), "echo"), "got: %q", output.String())
}

func TestRenderMissingFile(t *testing.T) {
	var output bytes.Buffer
	err := Render(&output, filepath.Join(t.TempDir(), "nonexistent.go"), 1)
	assert.Assert(t, err != nil)
	assert.Equal(t, output.Len(), 0)
}

func TestRenderLineOutOfRange(t *testing.T) {
	filename := writeLines(t, "alpha", "bravo")

	var output bytes.Buffer
	err := Render(&output, filename, 99)
	assert.Assert(t, err != nil)
	assert.Equal(t, output.Len(), 0)
}

func TestNoColorForNonTerminals(t *testing.T) {
	var output bytes.Buffer
	assert.Assert(t, !wantColor(&output))
}
