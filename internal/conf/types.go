package conf

import (
	"fmt"
	"time"
)

type Config struct {
	SampleInterval Interval `toml:"sample_interval"`
	Sections       []string `toml:"sections"`
	Log            Log      `toml:"log"`
}

type Log struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Interval is a CPU sampling window. In TOML it is either a number of
// seconds or a Go duration string.
type Interval time.Duration

func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

func (i *Interval) UnmarshalTOML(v any) error {
	d, err := ParseInterval(v)
	if err != nil {
		return fmt.Errorf("invalid sample_interval: %w", err)
	}
	*i = Interval(d)
	return nil
}
