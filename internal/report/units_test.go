package report

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatByteSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.00B"},
		{1, "1.00B"},
		{1023, "1023.00B"},
		{1024, "1.00KB"},
		{1253656, "1.20MB"},
		{1253656678, "1.17GB"},
		{1 << 40, "1.00TB"},
		{1 << 50, "1.00PB"},
		{1 << 60, "1024.00PB"},
		{1<<64 - 1, "16384.00PB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatByteSize(tt.bytes))
		})
	}
}

func TestFormatByteSizeSuffix(t *testing.T) {
	assert.Equal(t, "1.50Kb/s", FormatByteSizeSuffix(1536, "b/s"))
	assert.Equal(t, "0.00", FormatByteSizeSuffix(0, ""))
}

var sizePattern = regexp.MustCompile(`^(\d+\.\d{2})(B|KB|MB|GB|TB|PB)$`)

func sampleSizes() []uint64 {
	var sizes []uint64
	for shift := 0; shift < 64; shift++ {
		base := uint64(1) << shift
		sizes = append(sizes, base, base+base/3, base*3/2)
		if base > 1 {
			sizes = append(sizes, base-1)
		}
	}
	return sizes
}

func TestFormatByteSizeShape(t *testing.T) {
	for _, b := range sampleSizes() {
		got := FormatByteSize(b)
		assert.Regexp(t, sizePattern, got, "bytes=%d", b)
	}
}

func TestFormatByteSizeMonotonicWithinUnit(t *testing.T) {
	for start := uint64(1); start < 1<<50; start <<= 10 {
		var prevValue float64
		prevUnit := ""
		for b := start; b < start<<10; b += start * 7 {
			m := sizePattern.FindStringSubmatch(FormatByteSize(b))
			require.NotNil(t, m)
			value, err := strconv.ParseFloat(m[1], 64)
			require.NoError(t, err)
			if m[2] == prevUnit {
				assert.LessOrEqual(t, prevValue, value, "bytes=%d", b)
			}
			prevValue, prevUnit = value, m[2]
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0",
		25:    "25.0",
		11.1:  "11.1",
		89.7:  "89.7",
		100:   "100.0",
		100.2: "100.2",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPercent(in))
	}
}

func TestFormatPercentRoundTrip(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		pct := float64(i) / 10
		got, err := strconv.ParseFloat(FormatPercent(pct), 64)
		require.NoError(t, err)
		assert.Equal(t, pct, got)
	}
}

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "1661.76Mhz", FormatFrequency(1661.757))
	assert.Equal(t, "0.00Mhz", FormatFrequency(0))
	assert.False(t, strings.Contains(FormatFrequency(3500), " "))
}
