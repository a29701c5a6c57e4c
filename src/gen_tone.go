package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Convert mark/space bits to an AFSK waveform suitable
 *		for writing to a .WAV sound file or a sound device.
 *
 * Description:	Each bit becomes one bit-time of sine at the mark or
 *		space frequency.  The phase at the end of every segment
 *		is carried into the next one, so the waveform is a
 *		single continuous curve.  Restarting each tone at phase
 *		zero instead would put a click at every bit boundary and
 *		splatter energy far outside the two tones.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

/*------------------------------------------------------------------
 *
 * Name:	generate_tone
 *
 * Purpose:	Generate one tone segment.
 *
 * Inputs:	frequency	- Tone frequency in Hz.
 *
 *		duration	- Segment length in seconds.
 *
 *		samples_per_sec	- Sample rate.
 *
 *		initial_phase	- Where in the cycle to start, radians.
 *
 * Returns:	The samples, unit amplitude, and the phase at the end of
 *		the segment for the caller to pass into the next call.
 *
 * Description:	The sample count is floor(samples_per_sec * duration).
 *		Truncating rather than rounding means a 45.45 baud bit
 *		at 44100 samples/sec comes out 970 samples instead of
 *		the exact 970.3, so a long transmission runs very
 *		slightly fast.  The ending phase is computed from the
 *		true duration, not the truncated one, which keeps the
 *		error from accumulating in the phase.
 *
 *----------------------------------------------------------------*/

func generate_tone(frequency float64, duration float64, samples_per_sec int, initial_phase float64) ([]float64, float64) {
	var nsamples = int(float64(samples_per_sec) * duration)

	var tone = make([]float64, nsamples)
	for i := range tone {
		var t = float64(i) / float64(samples_per_sec)
		tone[i] = math.Sin(2*math.Pi*frequency*t + initial_phase)
	}

	var final_phase = math.Mod(initial_phase+2*math.Pi*frequency*duration, 2*math.Pi)

	return tone, final_phase
} /* end generate_tone */

/*------------------------------------------------------------------
 *
 * Name:	gen_tone
 *
 * Purpose:	Convert a bit sequence to a phase-continuous AFSK signal.
 *
 * Inputs:	bits		- Mark/space bits from baudot_encode.
 *
 *		mark_freq	- Tone for mark (1) bits, Hz.
 *
 *		space_freq	- Tone for space (0) bits, Hz.
 *
 *		baud_rate	- Bits per second on the line.
 *
 *		samples_per_sec	- Sample rate.
 *
 *		amplitude	- Peak amplitude of the result.  Applied
 *				  once to the finished signal.
 *
 * Returns:	Samples in the range of roughly -amplitude .. +amplitude.
 *
 *----------------------------------------------------------------*/

func gen_tone(bits []byte, mark_freq float64, space_freq float64, baud_rate float64, samples_per_sec int, amplitude float64) []float64 {
	Assert(baud_rate > 0)
	Assert(samples_per_sec > 0)
	Assert(mark_freq > 0 && space_freq > 0)

	var bit_duration = 1.0 / baud_rate
	var samples_per_bit = int(float64(samples_per_sec) * bit_duration)

	var signal = make([]float64, 0, len(bits)*samples_per_bit)

	var phase float64 = 0
	for _, bit := range bits {
		var frequency = space_freq
		if bit == MARK_BIT {
			frequency = mark_freq
		}

		var tone, next_phase = generate_tone(frequency, bit_duration, samples_per_sec, phase)
		signal = append(signal, tone...)
		phase = next_phase
	}

	for i := range signal {
		signal[i] *= amplitude
	}

	return signal
} /* end gen_tone */
