package gortty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func bits_from_string(s string) []byte {
	var bits = make([]byte, len(s))
	for i := range s {
		if s[i] == '1' {
			bits[i] = MARK_BIT
		}
	}
	return bits
}

func frame_count(bits []byte) int {
	return (len(bits) - PREAMBLE_MARK_BITS - 1) / BITS_PER_FRAME
}

func Test_BaudotFrame(t *testing.T) {
	// Space start bit, data in table order, mark stop bit.
	assert.Equal(t, bits_from_string("0110001"), baudot_frame("11000")) // A
	assert.Equal(t, bits_from_string("0111111"), ltrs_frame)
	assert.Equal(t, bits_from_string("0110111"), figs_frame)
}

func Test_BaudotEncode_Preamble(t *testing.T) {
	var bits = baudot_encode("A")

	for i := range PREAMBLE_MARK_BITS {
		assert.Equal(t, MARK_BIT, bits[i], "preamble bit %d", i)
	}

	// The defensive LTRS frame comes first, even for pure letters.
	assert.Equal(t, bits_from_string("0111111"),
		bits[PREAMBLE_MARK_BITS:PREAMBLE_MARK_BITS+BITS_PER_FRAME])

	// The line is left idle at mark.
	assert.Equal(t, MARK_BIT, bits[len(bits)-1])
}

func Test_BaudotEncode_NoRedundantShift(t *testing.T) {
	// Both letters, so just LTRS + A + B.  No shift frame in between.
	var bits = baudot_encode("AB")

	require.Equal(t, PREAMBLE_MARK_BITS+3*BITS_PER_FRAME+1, len(bits))

	var body = bits[PREAMBLE_MARK_BITS:]
	assert.Equal(t, bits_from_string("0111111"), body[0:7])   // LTRS
	assert.Equal(t, bits_from_string("0110001"), body[7:14])  // A
	assert.Equal(t, bits_from_string("0100111"), body[14:21]) // B
}

func Test_BaudotEncode_ShiftTransitions(t *testing.T) {
	// LTRS A FIGS 1 LTRS B: exactly one shift frame per mode change.
	var bits = baudot_encode("A1B")

	require.Equal(t, 6, frame_count(bits))

	var body = bits[PREAMBLE_MARK_BITS:]
	assert.Equal(t, bits_from_string("0110111"), body[14:21]) // FIGS
	assert.Equal(t, bits_from_string("0111011"), body[21:28]) // 1
	assert.Equal(t, bits_from_string("0111111"), body[28:35]) // LTRS
}

func Test_BaudotEncode_LettersPriorityForSpace(t *testing.T) {
	// Space is in both tables but the letters table wins, so "1 2"
	// shifts back to letters for the space and again to figures for
	// the 2: LTRS FIGS 1 LTRS sp FIGS 2.
	var bits = baudot_encode("1 2")

	assert.Equal(t, 7, frame_count(bits))
}

func Test_BaudotEncode_UnmappableSilentlyDropped(t *testing.T) {
	// Deliberate policy, not an error: characters with no Baudot code
	// just vanish.  Callers wanting strict validation must pre-filter.
	assert.Equal(t, baudot_encode("AB"), baudot_encode("A~B"))
	assert.Equal(t, baudot_encode("AB"), baudot_encode("AéB"))

	// Nothing mappable leaves just the preamble, LTRS and idle mark.
	assert.Equal(t, baudot_encode(""), baudot_encode("~~~"))
}

func Test_BaudotEncode_CaseInsensitive(t *testing.T) {
	assert.Equal(t, baudot_encode("CQ DE N0CALL"), baudot_encode("cq de n0call"))
}

func Test_BaudotEncode_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var text = rapid.StringMatching(`[ -~\r\n]*`).Draw(t, "text")

		var bits = baudot_encode(text)

		// Preamble + whole frames + one trailing mark, always.
		require.GreaterOrEqual(t, len(bits), PREAMBLE_MARK_BITS+BITS_PER_FRAME+1)
		require.Zero(t, (len(bits)-PREAMBLE_MARK_BITS-1)%BITS_PER_FRAME)

		// Every frame is bounded by a space start bit and a mark stop bit.
		var body = bits[PREAMBLE_MARK_BITS : len(bits)-1]
		for i := 0; i < len(body); i += BITS_PER_FRAME {
			assert.Equal(t, SPACE_BIT, body[i])
			assert.Equal(t, MARK_BIT, body[i+BITS_PER_FRAME-1])
		}
	})
}

func Test_BaudotTables(t *testing.T) {
	for _, b := range append(append([]baudot_s{}, BAUDOT_LETTERS...), BAUDOT_FIGURES...) {
		assert.Len(t, b.code, 5, "code for %q", b.ch)
	}

	// Lookup priority: letters first.
	var _, shift, ok = baudot_lookup(' ')
	assert.True(t, ok)
	assert.Equal(t, SHIFT_LETTERS, shift)

	var _, _, punct = baudot_lookup('~')
	assert.False(t, punct)
}
