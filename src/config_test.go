package gortty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultConfig(t *testing.T) {
	var config = default_config()

	assert.Equal(t, DEFAULT_MARK_FREQ, config.MarkFreq)
	assert.Equal(t, DEFAULT_SPACE_FREQ, config.SpaceFreq)
	assert.Equal(t, DEFAULT_BAUD, config.BaudRate)
	assert.Equal(t, DEFAULT_SAMPLES_PER_SEC, config.SamplesPerSec)
	assert.Equal(t, DEFAULT_LINE_WIDTH, config.LineWidth)
	assert.Empty(t, config.PTT)
	assert.Empty(t, config.LogDir)
}

func Test_ConfigRead(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "gortty.conf")

	require.NoError(t, os.WriteFile(path, []byte(
		"mark_freq: 1575\n"+
			"space_freq: 2425\n"+
			"baud_rate: 75\n"+
			"ptt: /dev/ttyUSB0:DTR\n"), 0644))

	var config = config_read(path)

	assert.Equal(t, 1575.0, config.MarkFreq)
	assert.Equal(t, 2425.0, config.SpaceFreq)
	assert.Equal(t, 75.0, config.BaudRate)
	assert.Equal(t, "/dev/ttyUSB0:DTR", config.PTT)

	// Anything not mentioned keeps its default.
	assert.Equal(t, DEFAULT_SAMPLES_PER_SEC, config.SamplesPerSec)
	assert.Equal(t, DEFAULT_AMPLITUDE, config.Amplitude)
}

func Test_ConfigRead_Malformed(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "gortty.conf")

	require.NoError(t, os.WriteFile(path, []byte("mark_freq: [not: a: number\n"), 0644))

	// A broken file is reported and ignored, not fatal.
	AssertOutputContains(t, func() {
		var config = config_read(path)
		assert.Equal(t, default_config(), config)
	}, "Error parsing config file")
}

func Test_ConfigRead_Missing(t *testing.T) {
	AssertOutputContains(t, func() {
		var config = config_read(filepath.Join(t.TempDir(), "nope.conf"))
		assert.Equal(t, default_config(), config)
	}, "Can't read config file")
}
