package gortty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func Test_PTTParse(t *testing.T) {
	var device, line, err = ptt_parse("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", device)
	assert.Equal(t, unix.TIOCM_RTS, line, "RTS is the default")

	device, line, err = ptt_parse("/dev/ttyS0:DTR")
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyS0", device)
	assert.Equal(t, unix.TIOCM_DTR, line)

	_, line, err = ptt_parse("/dev/ttyS0:rts")
	require.NoError(t, err)
	assert.Equal(t, unix.TIOCM_RTS, line, "line name is case-insensitive")
}

func Test_PTTParse_Errors(t *testing.T) {
	var _, _, err = ptt_parse("/dev/ttyS0:CTS")
	assert.Error(t, err, "only output lines can key a transmitter")

	_, _, err = ptt_parse(":RTS")
	assert.Error(t, err)
}

func Test_PTTOpen_MissingDevice(t *testing.T) {
	var _, err = ptt_open("/dev/does-not-exist:RTS")
	assert.Error(t, err)
}
