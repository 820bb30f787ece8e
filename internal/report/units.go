package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// byteUnits stops at P; larger values keep scaling in petabytes
var byteUnits = []string{"", "K", "M", "G", "T", "P"}

// FormatByteSize scales bytes to a human readable size.
//
//	1253656    => "1.20MB"
//	1253656678 => "1.17GB"
func FormatByteSize(bytes uint64) string {
	return FormatByteSizeSuffix(bytes, "B")
}

// FormatByteSizeSuffix is FormatByteSize with a custom unit suffix
func FormatByteSizeSuffix(bytes uint64, suffix string) string {
	const factor = 1024
	value := float64(bytes)
	unit := 0
	for value >= factor && unit < len(byteUnits)-1 {
		value /= factor
		unit++
	}
	return fmt.Sprintf("%.2f%s%s", value, byteUnits[unit], suffix)
}

// FormatPercent renders a percentage in its shortest form, always keeping
// one fractional digit: 25 => "25.0", 11.1 => "11.1"
func FormatPercent(p float64) string {
	switch {
	case math.IsNaN(p):
		return "nan"
	case math.IsInf(p, 1):
		return "inf"
	case math.IsInf(p, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatFrequency renders a clock rate in MHz with two decimals
func FormatFrequency(mhz float64) string {
	return strconv.FormatFloat(mhz, 'f', 2, 64) + "Mhz"
}
