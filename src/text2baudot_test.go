package gortty

import (
	"testing"
)

func Test_Text2Baudot(t *testing.T) {
	// Preamble, defensive LTRS, then the A frame.
	AssertOutputContains(t, func() { Text2Baudot([]string{"A"}) }, "11111111111111111111 0111111 0110001")
	AssertOutputContains(t, func() { Text2Baudot([]string{"A"}) }, "2 frames after the preamble.")

	// "A1" adds a FIGS shift frame before the digit.
	AssertOutputContains(t, func() { Text2Baudot([]string{"A1"}) }, "0110001 0110111 0111011")
	AssertOutputContains(t, func() { Text2Baudot([]string{"A1"}) }, "4 frames after the preamble.")
}
