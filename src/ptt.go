package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Key a transmitter around playback with a serial port
 *		control line ("push to talk").
 *
 * Description:	The classic homebrew interface: RTS or DTR of a serial
 *		port drives a transistor which keys the radio.  Raise
 *		the line, play the audio into the microphone input,
 *		drop the line.
 *
 *		Only meaningful when playing to a sound device.  Writing
 *		a .WAV file never keys anything.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

type ptt_s struct {
	fd     int
	line   int /* unix.TIOCM_RTS or unix.TIOCM_DTR */
	device string
}

/*
 * Parse a PTT specification of the form "device" or "device:line",
 * e.g. "/dev/ttyUSB0" or "/dev/ttyUSB0:DTR".  Line defaults to RTS.
 */

func ptt_parse(spec string) (string, int, error) {
	var device, line, found = strings.Cut(spec, ":")

	if device == "" {
		return "", 0, fmt.Errorf("PTT device name is missing in %q", spec)
	}

	if !found || strings.EqualFold(line, "RTS") {
		return device, unix.TIOCM_RTS, nil
	}

	if strings.EqualFold(line, "DTR") {
		return device, unix.TIOCM_DTR, nil
	}

	return "", 0, fmt.Errorf("PTT control line must be RTS or DTR, not %q", line)
} /* end ptt_parse */

func ptt_open(spec string) (*ptt_s, error) {
	var device, line, parseErr = ptt_parse(spec)
	if parseErr != nil {
		return nil, parseErr
	}

	var fd, openErr = unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if openErr != nil {
		return nil, fmt.Errorf("can't open PTT device %s: %w", device, openErr)
	}

	var p = &ptt_s{fd: fd, line: line, device: device}

	// Make sure we start out unkeyed.
	p.ptt_set(false)

	return p, nil
} /* end ptt_open */

func (p *ptt_s) ptt_set(on bool) {
	var stuff, _ = unix.IoctlGetInt(p.fd, unix.TIOCMGET)
	if on {
		stuff |= p.line
	} else {
		stuff &= ^p.line
	}
	unix.IoctlSetInt(p.fd, unix.TIOCMSET, stuff) //nolint:errcheck
}

func (p *ptt_s) ptt_close() {
	p.ptt_set(false)
	unix.Close(p.fd) //nolint:errcheck
}
