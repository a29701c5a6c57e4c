package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Convert text to framed 5-bit Baudot / ITA2 code, the
 *		character set of the teleprinter era.
 *
 * Description:	Five bits can only address 32 codes, so the alphabet is
 *		split across two shift states, "letters" and "figures",
 *		selected by the reserved LTRS and FIGS codes.  The
 *		encoder tracks the current state and transmits a shift
 *		code only when the next character needs the other table.
 *
 *		ITA2 variants disagree on a few of the figures positions
 *		(bell, WRU, national currency symbols).  The assignments
 *		below match the stations this was tested against, not
 *		any single standard.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
)

type baudot_shift_e int

const (
	SHIFT_LETTERS baudot_shift_e = iota
	SHIFT_FIGURES
)

type baudot_s struct {
	ch   rune
	code string /* 5 bits, transmitted left to right */
}

var BAUDOT_LETTERS = []baudot_s{
	{'A', "11000"},
	{'B', "10011"},
	{'C', "01110"},
	{'D', "10010"},
	{'E', "10000"},
	{'F', "10110"},
	{'G', "01011"},
	{'H', "00101"},
	{'I', "01100"},
	{'J', "11010"},
	{'K', "11110"},
	{'L', "01001"},
	{'M', "00111"},
	{'N', "00110"},
	{'O', "00011"},
	{'P', "01101"},
	{'Q', "11101"},
	{'R', "01010"},
	{'S', "10100"},
	{'T', "00001"},
	{'U', "11100"},
	{'V', "01111"},
	{'W', "11001"},
	{'X', "10111"},
	{'Y', "10101"},
	{'Z', "10001"},
	{' ', "00100"},
	{'\n', "00010"},
	{'\r', "00000"},
}

var BAUDOT_FIGURES = []baudot_s{
	{'1', "11101"},
	{'2', "11001"},
	{'3', "10000"},
	{'4', "01010"},
	{'5', "00001"},
	{'6', "10101"},
	{'7', "11100"},
	{'8', "01100"},
	{'9', "00011"},
	{'0', "01101"},
	{'-', "11000"},
	{'\'', "11010"},
	{'!', "10110"},
	{'&', "01011"},
	{'#', "00101"},
	{'(', "11110"},
	{')', "01001"},
	{'"', "10001"},
	{'/', "10111"},
	{':', "01110"},
	{';', "01111"},
	{'?', "10011"},
	{',', "00110"},
	{'.', "00111"},
	{'$', "10010"},
	{' ', "00100"},
	{'`', "11010"},
}

const LTRS_CODE = "11111" /* shift to letters */
const FIGS_CODE = "11011" /* shift to figures */

/* Constants after initialization. */

/*
 * Frames ready for transmission: start bit, 5 data bits, stop bit.
 * Built once at startup from the tables above, read-only afterward.
 */

var letters_frames map[rune][]byte
var figures_frames map[rune][]byte
var ltrs_frame []byte
var figs_frame []byte

func init() {
	letters_frames = make(map[rune][]byte, len(BAUDOT_LETTERS))
	for _, b := range BAUDOT_LETTERS {
		letters_frames[b.ch] = baudot_frame(b.code)
	}

	figures_frames = make(map[rune][]byte, len(BAUDOT_FIGURES))
	for _, b := range BAUDOT_FIGURES {
		figures_frames[b.ch] = baudot_frame(b.code)
	}

	ltrs_frame = baudot_frame(LTRS_CODE)
	figs_frame = baudot_frame(FIGS_CODE)
}

/*
 * Wrap a 5-bit code with the start (space) and stop (mark) bits.
 */

func baudot_frame(code string) []byte {
	Assert(len(code) == 5)

	var frame = make([]byte, 0, BITS_PER_FRAME)
	frame = append(frame, SPACE_BIT)

	for _, c := range code {
		if c == '1' {
			frame = append(frame, MARK_BIT)
		} else {
			frame = append(frame, SPACE_BIT)
		}
	}

	return append(frame, MARK_BIT)
} /* end baudot_frame */

/*------------------------------------------------------------------
 *
 * Name:	baudot_lookup
 *
 * Purpose:	Find the framed code and required shift state for one
 *		character.
 *
 * Inputs:	ch	- Character, already folded to upper case.
 *
 * Returns:	Frame, required shift state, and whether the character
 *		is representable at all.
 *
 *		The letters table wins when a character appears in both
 *		(space, for one).  That can cost a redundant shift back
 *		to letters, which every receiver tolerates.
 *
 *----------------------------------------------------------------*/

func baudot_lookup(ch rune) ([]byte, baudot_shift_e, bool) {
	if frame, ok := letters_frames[ch]; ok {
		return frame, SHIFT_LETTERS, true
	}

	if frame, ok := figures_frames[ch]; ok {
		return frame, SHIFT_FIGURES, true
	}

	return nil, SHIFT_LETTERS, false
} /* end baudot_lookup */

/*------------------------------------------------------------------
 *
 * Name:	baudot_encode
 *
 * Purpose:	Convert text to the full line-level bit sequence.
 *
 * Inputs:	text	- Text to send.  Case-insensitive; anything that
 *			  has no Baudot code is silently dropped.  Callers
 *			  wanting strict validation must pre-filter.
 *
 * Returns:	Mark/space bits: PREAMBLE_MARK_BITS idle marks, a LTRS
 *		frame to pin down the initial shift state, one frame per
 *		character with shift frames inserted on state changes,
 *		and a final mark to leave the line idle.
 *
 *----------------------------------------------------------------*/

func baudot_encode(text string) []byte {
	text = strings.ToUpper(text)

	var bits = make([]byte, 0, PREAMBLE_MARK_BITS+(len(text)+1)*BITS_PER_FRAME+1)

	for range PREAMBLE_MARK_BITS {
		bits = append(bits, MARK_BIT)
	}

	// The receiver may have missed everything so far, so make the
	// initial letters state explicit rather than assumed.

	bits = append(bits, ltrs_frame...)
	var shift = SHIFT_LETTERS

	for _, ch := range text {
		var frame, need, ok = baudot_lookup(ch)
		if !ok {
			continue
		}

		if need != shift {
			if need == SHIFT_LETTERS {
				bits = append(bits, ltrs_frame...)
			} else {
				bits = append(bits, figs_frame...)
			}
			shift = need
		}

		bits = append(bits, frame...)
	}

	return append(bits, MARK_BIT)
} /* end baudot_encode */
