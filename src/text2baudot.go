package gortty

import (
	"fmt"
	"os"
	"strings"
)

// Utility program for inspecting the encoding without generating any audio.
func Text2BaudotMain() {
	if len(os.Args) < 2 {
		fmt.Printf("Supply text string on command line.\n")
		os.Exit(1)
	}

	Text2Baudot(os.Args[1:])
}

/*------------------------------------------------------------------
 *
 * Name:	Text2Baudot
 *
 * Purpose:	Print the framed bit sequence for the given text, one
 *		group per line element, so a human can eyeball the
 *		start/stop framing and the shift codes.
 *
 *----------------------------------------------------------------*/

func Text2Baudot(args []string) {
	var text = strings.Join(args, " ")
	var bits = baudot_encode(text)

	var groups []string

	groups = append(groups, bit_group(bits[:PREAMBLE_MARK_BITS]))

	var body = bits[PREAMBLE_MARK_BITS : len(bits)-1]
	for i := 0; i < len(body); i += BITS_PER_FRAME {
		groups = append(groups, bit_group(body[i:i+BITS_PER_FRAME]))
	}

	groups = append(groups, bit_group(bits[len(bits)-1:]))

	fmt.Printf("%s\n", strings.Join(groups, " "))
	fmt.Printf("%d bits, %d frames after the preamble.\n",
		len(bits), len(body)/BITS_PER_FRAME)
} /* end Text2Baudot */

func bit_group(bits []byte) string {
	var sb strings.Builder
	for _, b := range bits {
		if b == MARK_BIT {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
