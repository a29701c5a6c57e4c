package gortty

import (
	"fmt"
	"runtime"
)

// All ordinary user-facing output funnels through here, after a
// text_color_set saying what kind of message follows.  Quiet mode drops
// informational chatter; errors and the transmission summary still print.
func rt_printf(format string, a ...any) (int, error) {
	if _quiet && _current_color == RT_COLOR_INFO {
		return 0, nil
	}

	return fmt.Printf(format, a...)
}

// Can't be "assert" because of conflicts with stretchr/testify/assert, but
// otherwise, it's compatible enough.
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("Assertion failed at %s:%d", file, line))
	}
}
