package gortty

// Message classification for terminal output.  Color is off (level 0)
// unless the CLI turns it on, so captured output stays clean.

import "fmt"

type rt_color_e int

const (
	RT_COLOR_INFO  rt_color_e = iota /* default */
	RT_COLOR_ERROR                   /* red */
	RT_COLOR_XMIT                    /* magenta */
	RT_COLOR_DEBUG                   /* dark green */
)

var _text_color_level int
var _current_color rt_color_e
var _quiet bool

var _ansi_codes = map[rt_color_e]string{
	RT_COLOR_INFO:  "\x1b[0m",
	RT_COLOR_ERROR: "\x1b[31m",
	RT_COLOR_XMIT:  "\x1b[35m",
	RT_COLOR_DEBUG: "\x1b[32m",
}

func text_color_init(level int) {
	_text_color_level = level
}

func text_color_set(c rt_color_e) {
	_current_color = c

	if _text_color_level == 0 {
		return
	}

	fmt.Print(_ansi_codes[c])
}

func set_quiet(q bool) {
	_quiet = q
}
