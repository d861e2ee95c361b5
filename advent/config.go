package main

import (
	"fmt"
	"strconv"

	"github.com/vaughan0/go-ini"
)

type config struct {
	size  int64
	start int64
}

func defaultConfig() config {
	return config{size: defaultDialSize, start: defaultStartPosition}
}

func loadConfig(filename string) (config, error) {
	f, err := ini.LoadFile(filename)
	if err != nil {
		return config{}, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	conf, err := parseConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("bad config (%s): %s", filename, err)
	}
	return conf, nil
}

// parseConfig reads the [dial] section of f. Keys that are not set keep
// their default values.
func parseConfig(f ini.File) (config, error) {
	conf := defaultConfig()
	for key, val := range f.Section("dial") {
		var dst *int64
		switch key {
		case "size":
			dst = &conf.size
		case "start":
			dst = &conf.start
		default:
			return conf, fmt.Errorf("unknown key %q in [dial]", key)
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return conf, fmt.Errorf("bad value for %s: %s", key, err)
		}
		*dst = n
	}
	if conf.size <= 0 {
		return conf, fmt.Errorf("dial size must be positive (got %d)", conf.size)
	}
	if conf.start < 0 || conf.start >= conf.size {
		return conf, fmt.Errorf("start position %d out of range [0, %d)", conf.start, conf.size)
	}
	return conf, nil
}
