package gortty

/*------------------------------------------------------------------
 *
 * Name:	gortty
 *
 * Purpose:	Command line RTTY signal generator.
 *
 * Description:	Given text, produce the corresponding Baudot AFSK
 *		signal and either write it to a .WAV file or play it
 *		through the default sound device.
 *
 * Examples:	Play the built-in demo message:
 *
 *			gortty
 *
 *		Send "CQ CQ CQ DE N0CALL" to a file:
 *
 *			gortty -o cq.wav CQ CQ CQ DE N0CALL
 *
 *		Pipe text through at 75 baud:
 *
 *			fortune | gortty -b 75 -
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func GorttyMain() {
	/*
	 * Built-in defaults, possibly adjusted by a config file.
	 * Command line options override both.
	 */

	var config = config_load()

	var markFrequency = pflag.Float64P("mark", "m", config.MarkFreq, "Mark (binary 1) tone frequency in Hz.")
	var spaceFrequency = pflag.Float64P("space", "s", config.SpaceFreq, "Space (binary 0) tone frequency in Hz.")
	var baudRate = pflag.Float64P("baud-rate", "b", config.BaudRate, "Baud rate.  45.45 is 60 WPM, 75 is 100 WPM.")
	var seventyFive = pflag.Bool("seventy-five", false, "Shortcut for -b 75.")
	var audioSampleRate = pflag.IntP("audio-sample-rate", "r", config.SamplesPerSec, "Audio sample rate.")
	var amplitude = pflag.Float64P("amplitude", "a", config.Amplitude, "Peak amplitude in range of 0 - 1.")
	var blockSize = pflag.Int("block-size", config.BlockSize, "Samples per write to the sound device.")
	var lineWidth = pflag.IntP("width", "w", config.LineWidth, "Wrap text to this many characters per line.")
	var outputFile = pflag.StringP("output-file", "o", "", "Write a .wav file instead of playing the signal.")
	var acoustic = pflag.Bool("acoustic", false, "Use the 1575/2425 Hz tone pair for acoustic coupling into a microphone.")
	var pttSpec = pflag.StringP("ptt", "p", config.PTT, "Key a transmitter during playback, e.g. /dev/ttyUSB0:RTS.")
	var logDir = pflag.StringP("log-dir", "l", config.LogDir, "Keep daily transmission logs in this directory.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", config.TimestampFormat, "strftime format for prefixing progress messages.")
	var textColor = pflag.IntP("text-color", "t", 0, "1 to color code terminal output, 0 for plain.")
	var quiet = pflag.BoolP("quiet", "q", false, "Suppress informational messages.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate Baudot RTTY audio from text.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [text ...]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Text arguments are joined with spaces.  A single \"-\" reads\n")
		fmt.Fprintf(os.Stderr, "standard input instead.  With no text at all, a built-in\n")
		fmt.Fprintf(os.Stderr, "demonstration message is sent.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  %s -o x.wav CQ CQ CQ DE N0CALL N0CALL K\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "    Classic 2125/2295 Hz tones at 45.45 baud, written to x.wav.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  echo hello | %s --acoustic -b 75 -\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "    Audio-coupling tone pair at 75 baud, straight to the speakers.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	text_color_init(*textColor)
	set_quiet(*quiet)

	// Shortcut flags only supply values the user didn't pick explicitly.

	if *seventyFive && !pflag.CommandLine.Changed("baud-rate") {
		*baudRate = BAUD_75
	}

	if *acoustic {
		if !pflag.CommandLine.Changed("mark") {
			*markFrequency = ACOUSTIC_MARK_FREQ
		}
		if !pflag.CommandLine.Changed("space") {
			*spaceFrequency = ACOUSTIC_SPACE_FREQ
		}
	}

	/*
	 * Complain about a bad configuration now, before doing any work.
	 */

	if *baudRate <= 0 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Baud rate must be positive, not %g.\n", *baudRate)
		os.Exit(1)
	}

	if *audioSampleRate < MIN_SAMPLES_PER_SEC || *audioSampleRate > MAX_SAMPLES_PER_SEC {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Use a more reasonable audio sample rate in range of %d - %d, not %d.\n",
			MIN_SAMPLES_PER_SEC, MAX_SAMPLES_PER_SEC, *audioSampleRate)
		os.Exit(1)
	}

	if *markFrequency <= 0 || *markFrequency >= float64(*audioSampleRate)/2 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Mark frequency must be positive and below half the sample rate, not %g.\n", *markFrequency)
		os.Exit(1)
	}

	if *spaceFrequency <= 0 || *spaceFrequency >= float64(*audioSampleRate)/2 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Space frequency must be positive and below half the sample rate, not %g.\n", *spaceFrequency)
		os.Exit(1)
	}

	if *amplitude <= 0 || *amplitude > 1 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Amplitude must be in range of 0 to 1, not %g.\n", *amplitude)
		os.Exit(1)
	}

	if *lineWidth < 1 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Line width must be at least 1, not %d.\n", *lineWidth)
		os.Exit(1)
	}

	if *blockSize < 1 {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Block size must be at least 1, not %d.\n", *blockSize)
		os.Exit(1)
	}

	/*
	 * Get the text: command line arguments, stdin for "-",
	 * or the demo message.
	 */

	var text string

	switch {
	case len(pflag.Args()) == 1 && pflag.Args()[0] == "-":
		text_color_set(RT_COLOR_INFO)
		rt_printf("Reading from stdin ...\n")

		var data, readErr = io.ReadAll(os.Stdin)
		if readErr != nil {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("Can't read stdin: %s\n", readErr)
			os.Exit(1)
		}
		text = string(data)

	case len(pflag.Args()) > 0:
		text = strings.Join(pflag.Args(), " ")

	default:
		text_color_set(RT_COLOR_INFO)
		rt_printf("No text supplied, sending the built-in message.\n")
		text = DEFAULT_MESSAGE
	}

	/*
	 * The pipeline itself.
	 */

	var wrapped = text_wrap(text, *lineWidth)
	var bits = baudot_encode(wrapped)
	var signal = gen_tone(bits, *markFrequency, *spaceFrequency, *baudRate, *audioSampleRate, *amplitude)

	var seconds = float64(len(signal)) / float64(*audioSampleRate)

	log_init(*logDir)
	defer log_term()

	text_color_set(RT_COLOR_XMIT)
	rt_printf("%s%d characters, %d bits, %.1f seconds of audio at %g baud.\n",
		timestamp_prefix(*timestampFormat), len(wrapped), len(bits), seconds, *baudRate)

	if *outputFile != "" {
		var writeErr = audio_file_write(*outputFile, signal, *audioSampleRate)
		if writeErr != nil {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("Couldn't write %s: %s\n", *outputFile, writeErr)
			os.Exit(1)
		}

		text_color_set(RT_COLOR_INFO)
		rt_printf("Wrote %s\n", audio_file_describe(*outputFile, signal, *audioSampleRate))

		log_write("wav:"+*outputFile, len(wrapped), len(bits), seconds)

		return
	}

	var ptt *ptt_s
	if *pttSpec != "" {
		var pttErr error
		ptt, pttErr = ptt_open(*pttSpec)
		if pttErr != nil {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("%s\n", pttErr)
			os.Exit(1)
		}
		defer ptt.ptt_close()

		ptt.ptt_set(true)
	}

	var playErr = audio_play(signal, *audioSampleRate, *blockSize)

	if ptt != nil {
		ptt.ptt_set(false)
	}

	if playErr != nil {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Playback failed: %s\n", playErr)
		os.Exit(1)
	}

	log_write("play", len(wrapped), len(bits), seconds)
} /* end GorttyMain */

func timestamp_prefix(format string) string {
	if len(format) > 0 {
		var formattedTime, _ = strftime.Format(format, time.Now())
		return formattedTime + " "
	}

	return ""
}
