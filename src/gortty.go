// Package gortty generates Baudot/ITA2 RTTY audio from text, either as a
// .WAV file or played directly through a sound device.
package gortty

/*
 * Text goes through a strict pipeline:
 *
 *	text -> text_wrap -> baudot_encode -> gen_tone -> sink
 *
 * The sink is either audio_file_write (16 bit PCM .WAV) or
 * audio_play (default sound device).
 */

/* Line signaling levels.  Mark is the idle state. */

const MARK_BIT = byte(1)
const SPACE_BIT = byte(0)

/*
 * One asynchronous frame is start bit (space), 5 data bits, stop bit (mark).
 * Historical teleprinters used longer stop elements (1.42 or 2 bits) but a
 * single stop bit is enough for the soundcard decoders this is tested with.
 */

const BITS_PER_FRAME = 1 + 5 + 1

/*
 * Idle mark bits sent before the first frame so a receiver that powered on
 * mid-stream can find the bit clock.  Anything >= 19 is fine; 20 for margin.
 */

const PREAMBLE_MARK_BITS = 20

/* Classic HF RTTY tone pair.  2125/2295 is "high tones", 170 Hz shift. */

const DEFAULT_MARK_FREQ = 2125.0
const DEFAULT_SPACE_FREQ = 2295.0

/*
 * Alternate pair for acoustic coupling into a transceiver microphone.
 * 850 Hz shift keeps both tones comfortably inside a voice passband.
 */

const ACOUSTIC_MARK_FREQ = 1575.0
const ACOUSTIC_SPACE_FREQ = 2425.0

/* 45.45 baud = 60 WPM, the usual amateur speed.  75 baud = 100 WPM. */

const DEFAULT_BAUD = 45.45
const BAUD_75 = 75.0

const DEFAULT_SAMPLES_PER_SEC = 44100
const MIN_SAMPLES_PER_SEC = 8000
const MAX_SAMPLES_PER_SEC = 48000

const DEFAULT_AMPLITUDE = 1.0

/* Samples per write to the sound device. */

const DEFAULT_BLOCKSIZE = 1000

/* Teleprinter carriage width. */

const DEFAULT_LINE_WIDTH = 70

const CRLF = "\r\n"

/*
 * Sent when no text is supplied.  RYRYRY... is the traditional RTTY test
 * pattern: R and Y alternate every data bit.
 */

const DEFAULT_MESSAGE = "Hello World! This is gortty\r\n" +
	"(This is the example message)\r\n" +
	"12345 Text 67890\r\n" +
	"RYRYRYRYRYRYRYRYRYRY\r\n" +
	"AMAMAMAMAMAMAMAMAMA"
