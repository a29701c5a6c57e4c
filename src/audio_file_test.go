package gortty

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FloatToPCM16(t *testing.T) {
	assert.Equal(t, int16(0), float_to_pcm16(0))
	assert.Equal(t, int16(16384), float_to_pcm16(0.5))
	assert.Equal(t, int16(-16384), float_to_pcm16(-0.5))

	// Full scale positive would overflow 16 bits; it clips instead of wrapping.
	assert.Equal(t, int16(32767), float_to_pcm16(1.0))
	assert.Equal(t, int16(32767), float_to_pcm16(1.7))
	assert.Equal(t, int16(-32768), float_to_pcm16(-1.0))
	assert.Equal(t, int16(-32768), float_to_pcm16(-2.0))
}

func Test_AudioFileWrite(t *testing.T) {
	var fname = filepath.Join(t.TempDir(), "out.wav")

	var signal = []float64{0, 0.5, -0.5, 0.25}

	require.NoError(t, audio_file_write(fname, signal, DEFAULT_SAMPLES_PER_SEC))

	var data, readErr = os.ReadFile(fname)
	require.NoError(t, readErr)

	// 44 byte canonical header plus 2 bytes per sample.
	require.Len(t, data, 44+2*len(signal))

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, "data", string(data[36:40]))

	assert.Equal(t, uint32(len(data)-8), binary.LittleEndian.Uint32(data[4:8]))

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]), "PCM format tag")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]), "mono")
	assert.Equal(t, uint32(DEFAULT_SAMPLES_PER_SEC), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]), "bits per sample")
	assert.Equal(t, uint32(2*len(signal)), binary.LittleEndian.Uint32(data[40:44]))

	// Samples are little endian int16, scaled by 2^15.
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[44:46]))
	assert.Equal(t, uint16(16384), binary.LittleEndian.Uint16(data[46:48]))
	assert.Equal(t, int16(-16384), int16(binary.LittleEndian.Uint16(data[48:50])))
	assert.Equal(t, uint16(8192), binary.LittleEndian.Uint16(data[50:52]))
}

func Test_AudioFileWrite_BadPath(t *testing.T) {
	var err = audio_file_write(filepath.Join(t.TempDir(), "no", "such", "dir.wav"), []float64{0}, DEFAULT_SAMPLES_PER_SEC)

	assert.Error(t, err)
}
