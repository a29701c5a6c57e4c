package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Play the generated signal through a sound device.
 *
 * Description:	Uses PortAudio and whatever it picks as the default
 *		output device.  The signal is pushed out in fixed size
 *		blocks; a smaller block size lowers latency, a larger
 *		one is more forgiving of a busy machine.  For this
 *		application latency is irrelevant so the default of
 *		DEFAULT_BLOCKSIZE is fine.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

/*------------------------------------------------------------------
 *
 * Name:        audio_play
 *
 * Purpose:     Send the whole signal to the default output device and
 *		wait for it to finish.
 *
 * Inputs:	signal		- Samples from gen_tone, -1 .. +1 range.
 *
 *		samples_per_sec	- Playback sample rate.
 *
 *		blocksize	- Samples per write to the device.
 *
 * Returns:	nil for success.  PortAudio errors (no device, rate not
 *		supported, ...) come back as-is.
 *
 *----------------------------------------------------------------*/

func audio_play(signal []float64, samples_per_sec int, blocksize int) error {
	Assert(blocksize > 0)

	var initErr = portaudio.Initialize()
	if initErr != nil {
		return fmt.Errorf("can't initialize PortAudio: %w", initErr)
	}
	defer portaudio.Terminate() //nolint:errcheck

	var out = make([]float32, blocksize)

	var stream, openErr = portaudio.OpenDefaultStream(0, 1, float64(samples_per_sec), blocksize, &out)
	if openErr != nil {
		return fmt.Errorf("can't open default output device: %w", openErr)
	}
	defer stream.Close() //nolint:errcheck

	var startErr = stream.Start()
	if startErr != nil {
		return startErr
	}
	defer stream.Stop() //nolint:errcheck

	for begin := 0; begin < len(signal); begin += blocksize {

		// The final block is zero padded to keep the device happy.

		for i := range out {
			if begin+i < len(signal) {
				out[i] = float32(signal[begin+i])
			} else {
				out[i] = 0
			}
		}

		var writeErr = stream.Write()
		if writeErr != nil {
			return writeErr
		}
	}

	return nil
} /* end audio_play */
