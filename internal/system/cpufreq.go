package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readCPUFrequencyFrom reads cpufreq attributes below a sysfs cpu directory.
// Current, Min and Max are each averaged over the cores that report them,
// preferring the scaling governor limits over the hardware ones. Values are
// converted from kHz to MHz.
func readCPUFrequencyFrom(root string) (*CPUFrequency, error) {
	dirs, err := filepath.Glob(filepath.Join(root, "cpu[0-9]*", "cpufreq"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob cpufreq: %w", err)
	}
	if len(dirs) == 0 {
		return nil, errors.New("no cpufreq entries found")
	}

	var cur, lo, hi mean
	for _, dir := range dirs {
		v, err := readFirstKHz(dir, "scaling_cur_freq", "cpuinfo_cur_freq")
		if err != nil {
			continue
		}
		cur.add(v)

		if v, err := readFirstKHz(dir, "scaling_min_freq", "cpuinfo_min_freq"); err == nil {
			lo.add(v)
		}
		if v, err := readFirstKHz(dir, "scaling_max_freq", "cpuinfo_max_freq"); err == nil {
			hi.add(v)
		}
	}
	if cur.n == 0 {
		return nil, errors.New("no readable cpufreq entries")
	}
	return &CPUFrequency{Current: cur.value(), Min: lo.value(), Max: hi.value()}, nil
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

// readFirstKHz returns the first of names below dir that can be read
func readFirstKHz(dir string, names ...string) (v float64, err error) {
	for _, name := range names {
		if v, err = readKHz(filepath.Join(dir, name)); err == nil {
			return v, nil
		}
	}
	return 0, err
}

func readKHz(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v / 1000, nil
}
