package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Reflow text to the teleprinter carriage width before
 *		encoding, so a mechanical or software receiver never
 *		prints past the end of a line.
 *
 * Description:	Existing line breaks are kept as hard breaks.  A segment
 *		longer than the width is broken at the last sensible
 *		character before the limit, or chopped at exactly the
 *		limit when it is one unbroken run.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
)

/*
 * Characters we are willing to break a line after.
 * The break character stays at the end of the current line.
 */

const WRAP_BREAK_CHARS = " ,.;:!?-\t"

/*------------------------------------------------------------------
 *
 * Name:	text_wrap
 *
 * Purpose:	Insert line breaks so that no line exceeds the given width.
 *
 * Inputs:	text	- Raw text.  May already contain "\n" or "\r\n"
 *			  breaks; both are treated as hard breaks.
 *
 *		width	- Maximum characters per line.  Must be positive.
 *
 * Returns:	The reflowed text.  All line terminators, old and new,
 *		come out as CR LF because that is what the Baudot tables
 *		transmit.  Empty input comes back unchanged.
 *
 * Description:	Wrapping already-wrapped text at the same width changes
 *		nothing, so it is safe to call this on text of unknown
 *		provenance.
 *
 *----------------------------------------------------------------*/

func text_wrap(text string, width int) string {
	Assert(width > 0)

	if len(text) == 0 {
		return text
	}

	var segments = strings.Split(strings.ReplaceAll(text, CRLF, "\n"), "\n")

	var lines []string
	for _, segment := range segments {
		lines = append(lines, wrap_segment(segment, width)...)
	}

	return strings.Join(lines, CRLF)
} /* end text_wrap */

/*
 * Break a single segment (no embedded line breaks) into lines of at
 * most width characters.
 */

func wrap_segment(segment string, width int) []string {
	var lines []string

	for len(segment) > width {

		// Look backward from the limit for somewhere acceptable to break.
		// Index 0 is useless: breaking after it still leaves the rest too long
		// and we would loop forever on e.g. a leading space.

		var brk = -1
		for i := width - 1; i >= 1; i-- {
			if strings.ContainsRune(WRAP_BREAK_CHARS, rune(segment[i])) {
				brk = i
				break
			}
		}

		if brk >= 0 {
			lines = append(lines, segment[:brk+1])
			segment = strings.TrimLeft(segment[brk+1:], " \t")
		} else {
			// One unbreakable run.  Chop at the limit, losing nothing.
			lines = append(lines, segment[:width])
			segment = segment[width:]
		}
	}

	return append(lines, segment)
} /* end wrap_segment */
