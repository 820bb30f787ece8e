//go:build !linux

package system

import (
	"errors"
	"runtime"
)

// gopsutil's CPU info is the only frequency source outside Linux
func readCPUFrequency() (*CPUFrequency, error) {
	return nil, errors.New("cpufreq is not available on " + runtime.GOOS)
}
