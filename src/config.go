package gortty

/*------------------------------------------------------------------
 *
 * Purpose:   	Optional configuration file for people who always use
 *		the same station setup and don't want to repeat it on
 *		every command line.
 *
 * Description:	First gortty.conf found in the search locations below
 *		is read once at startup.  Values from the file override
 *		the built-in defaults; command line options override
 *		both.  No file at all is perfectly fine.
 *
 *---------------------------------------------------------------*/

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type config_s struct {
	MarkFreq        float64 `yaml:"mark_freq"`
	SpaceFreq       float64 `yaml:"space_freq"`
	BaudRate        float64 `yaml:"baud_rate"`
	SamplesPerSec   int     `yaml:"sample_rate"`
	Amplitude       float64 `yaml:"amplitude"`
	BlockSize       int     `yaml:"block_size"`
	LineWidth       int     `yaml:"line_width"`
	PTT             string  `yaml:"ptt"`
	TimestampFormat string  `yaml:"timestamp_format"`
	LogDir          string  `yaml:"log_dir"`
}

func default_config() config_s {
	return config_s{
		MarkFreq:      DEFAULT_MARK_FREQ,
		SpaceFreq:     DEFAULT_SPACE_FREQ,
		BaudRate:      DEFAULT_BAUD,
		SamplesPerSec: DEFAULT_SAMPLES_PER_SEC,
		Amplitude:     DEFAULT_AMPLITUDE,
		BlockSize:     DEFAULT_BLOCKSIZE,
		LineWidth:     DEFAULT_LINE_WIDTH,
	}
}

/*
 * Search order.  First hit wins.
 */

func config_search_locations() []string {
	var locations = []string{
		"gortty.conf", // Current working directory
	}

	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "gortty.conf"))
	}

	return append(locations, "/etc/gortty.conf")
}

/*------------------------------------------------------------------
 *
 * Name:	config_load
 *
 * Purpose:	Called once at startup to establish the effective
 *		defaults.
 *
 * Returns:	Built-in defaults, possibly overridden by the first
 *		configuration file found.  A malformed file is reported
 *		and otherwise ignored; a bad config file shouldn't stop
 *		a transmission that was fully specified on the command
 *		line.
 *
 *----------------------------------------------------------------*/

func config_load() config_s {
	for _, location := range config_search_locations() {
		if _, err := os.Stat(location); err == nil {
			return config_read(location)
		}
	}

	return default_config()
} /* end config_load */

func config_read(path string) config_s {
	var config = default_config()

	var data, readErr = os.ReadFile(path) //nolint:gosec // Fixed search locations plus $HOME
	if readErr != nil {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Can't read config file %s: %s\n", path, readErr)
		return config
	}

	var unmarshalErr = yaml.Unmarshal(data, &config)
	if unmarshalErr != nil {
		text_color_set(RT_COLOR_ERROR)
		rt_printf("Error parsing config file %s: %s\n", path, unmarshalErr)
		return default_config()
	}

	return config
} /* end config_read */
