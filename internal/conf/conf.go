package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Report sections in output order
var AllSections = []string{"system", "boot", "cpu", "memory", "disk", "network"}

var LogLevels = []string{"debug", "info", "warn", "error"}

const envPrefix = "HOSTREPORT_"

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Default()
)

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SampleInterval: Interval(time.Second),
		Sections:       slices.Clone(AllSections),
		Log: Log{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadConfig sets Path and layers the config file and environment over the defaults.
// Run this at start. A missing file is not an error.
func LoadConfig(path string) error {
	Path = path
	if err := Update(); err != nil {
		return err
	}
	// .env is optional; real environment variables take precedence over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return ApplyEnv(os.LookupEnv)
}

// Update reads the config file at Path into the global Conf
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	next := Conf
	next.Sections = slices.Clone(Conf.Sections)
	md, err := toml.DecodeFile(Path, &next)
	if err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", Path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys in config file %s: %s", Path, strings.Join(keys, ", "))
	}
	if err = next.Validate(); err != nil {
		return fmt.Errorf("invalid config file %s: %w", Path, err)
	}
	Conf = next
	return nil
}

// ApplyEnv overrides the global Conf from HOSTREPORT_* variables
func ApplyEnv(lookup func(string) (string, bool)) error {
	mu.Lock()
	defer mu.Unlock()

	next := Conf
	next.Sections = slices.Clone(Conf.Sections)

	if v, ok := lookup(envPrefix + "SAMPLE_INTERVAL"); ok {
		d, err := ParseInterval(v)
		if err != nil {
			return fmt.Errorf("invalid %sSAMPLE_INTERVAL: %w", envPrefix, err)
		}
		next.SampleInterval = Interval(d)
	}
	if v, ok := lookup(envPrefix + "SECTIONS"); ok {
		next.Sections = ParseSections(v)
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		next.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(envPrefix + "LOG_FILE"); ok {
		next.Log.File = v
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	Conf = next
	return nil
}

// SetSampleInterval overrides the sampling window, e.g. from a command line flag
func SetSampleInterval(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("sample interval must not be negative: %v", d)
	}
	mu.Lock()
	defer mu.Unlock()
	Conf.SampleInterval = Interval(d)
	return nil
}

// SetSections overrides the report sections, e.g. from a command line flag
func SetSections(sections []string) error {
	if err := validateSections(sections); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	Conf.Sections = slices.Clone(sections)
	return nil
}

// Validate checks a configuration for values the report cannot use
func (c Config) Validate() error {
	if c.SampleInterval < 0 {
		return fmt.Errorf("sample_interval must not be negative: %v", c.SampleInterval.Duration())
	}
	if err := validateSections(c.Sections); err != nil {
		return err
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

func validateSections(sections []string) error {
	for _, s := range sections {
		if !slices.Contains(AllSections, s) {
			return fmt.Errorf("unknown section %q (want any of %s)", s, strings.Join(AllSections, ", "))
		}
	}
	return nil
}

// ParseInterval converts a number of seconds or a duration string to a duration
func ParseInterval(v any) (time.Duration, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if secs, err := cast.ToFloat64E(s); err == nil {
			return secondsToDuration(secs)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("failed to parse interval %q: %w", s, err)
		}
		if d < 0 {
			return 0, fmt.Errorf("interval must not be negative: %s", s)
		}
		return d, nil
	}

	secs, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse interval %v: %w", v, err)
	}
	return secondsToDuration(secs)
}

func secondsToDuration(secs float64) (time.Duration, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("interval is not finite: %v", secs)
	}
	if secs < 0 {
		return 0, fmt.Errorf("interval must not be negative: %v", secs)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// ParseSections splits a comma or space separated list of section names
func ParseSections(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	sections := make([]string, 0, len(fields))
	for _, f := range fields {
		sections = append(sections, strings.ToLower(f))
	}
	return sections
}

// Read returns a copy of the current configuration
func Read() Config {
	mu.RLock()
	defer mu.RUnlock()

	conf := Conf
	conf.Sections = slices.Clone(Conf.Sections)
	return conf
}

// Reset restores the defaults and forgets Path
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	Path = ""
	Conf = Default()
}
