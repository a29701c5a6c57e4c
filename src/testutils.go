package gortty

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run command with stdout redirected to a pipe and return what it printed.
// Text coloring must be off (the default) or the escape codes get in the way.
func capture_stdout(command func()) string {
	var oldStdout = os.Stdout

	var r, w, _ = os.Pipe()
	os.Stdout = w

	command()

	w.Close() //nolint:errcheck
	os.Stdout = oldStdout

	var output, _ = io.ReadAll(r)
	return string(output)
}

func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, capture_stdout(command), expectedOutputContains)
}
