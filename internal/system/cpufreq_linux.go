//go:build linux

package system

const sysCPU = "/sys/devices/system/cpu"

func readCPUFrequency() (*CPUFrequency, error) {
	return readCPUFrequencyFrom(sysCPU)
}
