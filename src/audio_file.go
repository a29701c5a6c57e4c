package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Write the generated signal to a .WAV format file.
 *
 * Description:	16 bit signed PCM, mono, little endian.  The float
 *		signal from gen_tone is scaled by 2^15 and truncated;
 *		anything outside the 16 bit range is clipped rather
 *		than wrapped.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

type wav_header struct { /* .WAV file header. */
	riff            [4]byte /* "RIFF" */
	filesize        int32   /* file length - 8 */
	wave            [4]byte /* "WAVE" */
	fmtid           [4]byte /* "fmt " */
	fmtsize         int32   /* 16. */
	wformattag      int16   /* 1 for PCM. */
	nchannels       int16   /* 1 for mono. */
	nsamplespersec  int32   /* sampling freq, Hz. */
	navgbytespersec int32   /* = nblockalign * nsamplespersec. */
	nblockalign     int16   /* = wbitspersample / 8 * nchannels. */
	wbitspersample  int16   /* 16. */
	data            [4]byte /* "data" */
	datasize        int32   /* number of bytes following. */
}

/*------------------------------------------------------------------
 *
 * Name:        audio_file_write
 *
 * Purpose:     Create a .WAV file containing the whole signal.
 *
 * Inputs:      fname		- Name of .WAV file to create.
 *
 *		signal		- Samples from gen_tone, nominally in
 *				  the -1 .. +1 range.
 *
 *		samples_per_sec	- Sample rate to declare in the header.
 *
 * Returns:     nil for success.  File system errors come back as-is.
 *
 * Description:	Unlike a streaming writer there is no need to seek back
 *		and patch the header afterward; the signal is complete
 *		before we get here, so the sizes are known up front.
 *
 *----------------------------------------------------------------*/

func audio_file_write(fname string, signal []float64, samples_per_sec int) error {
	var datasize = int32(len(signal) * 2)

	var header wav_header
	copy(header.riff[:], "RIFF")
	copy(header.wave[:], "WAVE")
	copy(header.fmtid[:], "fmt ")
	header.fmtsize = 16
	header.wformattag = 1
	header.nchannels = 1
	header.nsamplespersec = int32(samples_per_sec)
	header.wbitspersample = 16
	header.nblockalign = header.wbitspersample / 8 * header.nchannels
	header.navgbytespersec = int32(header.nblockalign) * header.nsamplespersec
	copy(header.data[:], "data")
	header.datasize = datasize
	header.filesize = datasize + int32(binary.Size(header)) - 8

	var f, openErr = os.Create(fname) //nolint:gosec // User-supplied output file from CLI
	if openErr != nil {
		return openErr
	}

	var w = bufio.NewWriter(f)

	var writeErr = binary.Write(w, binary.LittleEndian, header)
	if writeErr != nil {
		f.Close()
		return writeErr
	}

	for _, s := range signal {
		writeErr = binary.Write(w, binary.LittleEndian, float_to_pcm16(s))
		if writeErr != nil {
			f.Close()
			return writeErr
		}
	}

	var flushErr = w.Flush()
	var closeErr = f.Close()

	if flushErr != nil {
		return flushErr
	}

	return closeErr
} /* end audio_file_write */

/*
 * Scale a -1 .. +1 sample to the 16 bit range, truncating toward zero.
 * +1.0 exactly would overflow to -32768 without the clip.
 */

func float_to_pcm16(s float64) int16 {
	var scaled = s * 32768

	if scaled > 32767 {
		return 32767
	}
	if scaled < -32768 {
		return -32768
	}

	return int16(scaled)
}

func audio_file_describe(fname string, signal []float64, samples_per_sec int) string {
	return fmt.Sprintf("%s: %d samples, %.1f seconds at %d samples/sec",
		fname, len(signal), float64(len(signal))/float64(samples_per_sec), samples_per_sec)
}
