package gortty

/*------------------------------------------------------------------
 *
 * Purpose:	Keep a station log of transmissions.
 *
 * Description:	Rather than free-form text, write separated properties
 *		in CSV format for easy reading and later processing.
 *		Daily file names are created in the configured
 *		directory, so the directory accumulates one small file
 *		per day of operation.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

var g_log_dir string
var g_log_fp *os.File
var g_open_fname string

const log_header = "utime,isotime,sink,chars,bits,seconds\n"

/*------------------------------------------------------------------
 *
 * Name:	log_init
 *
 * Purpose:	Initialization at start of application.
 *
 * Inputs:	dir	- Directory for daily log files.
 *			  Use "." for current directory.
 *			  Empty string disables the feature.
 *
 *----------------------------------------------------------------*/

func log_init(dir string) {
	g_log_dir = ""
	g_log_fp = nil
	g_open_fname = ""

	if len(dir) == 0 {
		return
	}

	var stat, statErr = os.Stat(dir)

	if statErr == nil {
		if stat.IsDir() {
			g_log_dir = dir
		} else {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("Log file location \"%s\" is not a directory.\n", dir)
			rt_printf("Using current working directory \".\" instead.\n")
			g_log_dir = "."
		}
	} else {
		// Doesn't exist.  Try to create it.  The parent must exist;
		// we don't create multiple levels like "mkdir -p".
		var mkdirErr = os.Mkdir(dir, 0755)
		if mkdirErr == nil {
			text_color_set(RT_COLOR_INFO)
			rt_printf("Log file location \"%s\" has been created.\n", dir)
			g_log_dir = dir
		} else {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("Failed to create log file location \"%s\".\n", dir)
			rt_printf("%s\n", mkdirErr)
			rt_printf("Using current working directory \".\" instead.\n")
			g_log_dir = "."
		}
	}
} /* end log_init */

/*------------------------------------------------------------------
 *
 * Name:	log_write
 *
 * Purpose:	Append one transmission to today's log file.
 *
 * Inputs:	sink	- "wav" or "play", plus the file name for wav.
 *
 *		chars	- Characters of (wrapped) text transmitted.
 *
 *		bits	- Bits on the line, preamble included.
 *
 *		seconds	- Audio duration.
 *
 *----------------------------------------------------------------*/

func log_write(sink string, chars int, bits int, seconds float64) {
	if len(g_log_dir) == 0 {
		return
	}

	var now = time.Now().UTC()

	// File names are generated from the current date, UTC, so the
	// boundary doesn't wander with daylight saving.

	var fname, fmtErr = strftime.Format("%Y-%m-%d.log", now)
	if fmtErr != nil {
		return
	}

	if g_log_fp != nil && fname != g_open_fname {
		log_term()
	}

	if g_log_fp == nil {
		var full_path = filepath.Join(g_log_dir, fname)

		// Used below to write a header only on the first line.

		var _, statErr = os.Stat(full_path)
		var already_there = statErr == nil

		text_color_set(RT_COLOR_INFO)
		rt_printf("Opening log file \"%s\".\n", fname)

		var f, openErr = os.OpenFile(full_path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644) //nolint:gosec
		if openErr != nil {
			text_color_set(RT_COLOR_ERROR)
			rt_printf("Can't open log file \"%s\" for write.\n", full_path)
			rt_printf("%s\n", openErr)
			g_open_fname = ""
			return
		}

		g_log_fp = f
		g_open_fname = fname

		if !already_there {
			fmt.Fprintf(g_log_fp, log_header)
		}
	}

	var w = csv.NewWriter(g_log_fp)
	w.Write([]string{ //nolint:errcheck
		strconv.Itoa(int(now.Unix())),
		now.Format("2006-01-02T15:04:05Z"),
		sink,
		strconv.Itoa(chars),
		strconv.Itoa(bits),
		fmt.Sprintf("%.2f", seconds),
	})
	w.Flush()

	var writeErr = w.Error()
	if writeErr != nil {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Log write error: %s\n", writeErr)
	}
} /* end log_write */

/*------------------------------------------------------------------
 *
 * Name:	log_term
 *
 * Purpose:	Close any open log file.
 *		Called when exiting or when the date changes.
 *
 *----------------------------------------------------------------*/

func log_term() {
	if g_log_fp != nil {
		text_color_set(RT_COLOR_INFO)
		rt_printf("Closing log file \"%s\".\n", g_open_fname)

		g_log_fp.Close()

		g_log_fp = nil
		g_open_fname = ""
	}
} /* end log_term */
