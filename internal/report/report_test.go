package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hostreport/internal/system"
)

// fakeCollector serves canned snapshots; a non-nil error field makes that
// category fail
type fakeCollector struct {
	identity   system.Identity
	boot       system.BootInfo
	bootErr    error
	cpu        system.CPUSnapshot
	cpuErr     error
	memory     system.MemorySnapshot
	memoryErr  error
	swap       system.SwapSnapshot
	swapErr    error
	partitions []system.DiskPartition
	partErr    error
	diskIO     system.DiskIOTotals
	diskIOErr  error
	ifaces     []system.NetworkInterface
	netIO      system.NetworkIOTotals
	netIOErr   error

	sampled []time.Duration
}

func (f *fakeCollector) SystemIdentity() system.Identity { return f.identity }
func (f *fakeCollector) BootInfo() (system.BootInfo, error) {
	return f.boot, f.bootErr
}
func (f *fakeCollector) CPUSnapshot(interval time.Duration) (system.CPUSnapshot, error) {
	f.sampled = append(f.sampled, interval)
	return f.cpu, f.cpuErr
}
func (f *fakeCollector) MemorySnapshot() (system.MemorySnapshot, error) {
	return f.memory, f.memoryErr
}
func (f *fakeCollector) SwapSnapshot() (system.SwapSnapshot, error) { return f.swap, f.swapErr }
func (f *fakeCollector) DiskPartitions() ([]system.DiskPartition, error) {
	return f.partitions, f.partErr
}
func (f *fakeCollector) DiskIOTotals() (system.DiskIOTotals, error) {
	return f.diskIO, f.diskIOErr
}
func (f *fakeCollector) NetworkInterfaces() []system.NetworkInterface { return f.ifaces }
func (f *fakeCollector) NetworkIOTotals() (system.NetworkIOTotals, error) {
	return f.netIO, f.netIOErr
}

var _ system.Collector = (*fakeCollector)(nil)

func newFakeCollector() *fakeCollector {
	return &fakeCollector{
		identity: system.Identity{OS: "Linux", Node: "rockikz", Machine: "x86_64"},
		boot:     system.BootInfo{BootTime: time.Date(2019, 8, 21, 9, 37, 26, 0, time.UTC)},
		cpu: system.CPUSnapshot{
			PhysicalCores: 2,
			LogicalCores:  2,
			PerCore:       []float64{1.5, 2.5},
			Total:         2,
		},
		memory: system.MemorySnapshot{Total: 4_000_000_000, Available: 3_000_000_000, Used: 1_000_000_000, UsedPercent: 25},
		partitions: []system.DiskPartition{
			{Device: "/dev/sda1", Mountpoint: "/", FSType: "ext4", Total: 1024, Used: 512, Free: 512, UsedPercent: 50},
		},
		diskIO: system.DiskIOTotals{ReadBytes: 2048, WriteBytes: 4096},
		ifaces: []system.NetworkInterface{
			{Name: "lo", Addrs: []system.NetworkAddress{{Family: system.FamilyIPv4, Address: "127.0.0.1", Netmask: "255.0.0.0"}}},
		},
		netIO: system.NetworkIOTotals{BytesSent: 1, BytesRecv: 2},
	}
}

func TestReporterWrite(t *testing.T) {
	c := newFakeCollector()
	var buf bytes.Buffer

	err := New(c, nil, WithSampleInterval(250*time.Millisecond)).Write(&buf)
	require.NoError(t, err)

	bar := strings.Repeat("=", 40)
	want := bar + " System Information " + bar + "\n" +
		"System: Linux\nNode Name: rockikz\nRelease: \nVersion: \nMachine: x86_64\nProcessor: \n" +
		bar + " Boot Time " + bar + "\n" +
		"Boot Time: 2019/8/21 9:37:26\n" +
		bar + " CPU Info " + bar + "\n" +
		"Physical cores: 2\nTotal cores: 2\n" +
		"Max Frequency: N/A\nMin Frequency: N/A\nCurrent Frequency: N/A\n" +
		"CPU Usage Per Core:\nCore 0: 1.5%\nCore 1: 2.5%\nTotal CPU Usage: 2.0%\n" +
		bar + " Memory Information " + bar + "\n" +
		"Total: 3.73GB\nAvailable: 2.79GB\nUsed: 953.67MB\nPercentage: 25.0%\n" +
		"==================== SWAP ====================\n" +
		"Total: 0.00B\nFree: 0.00B\nUsed: 0.00B\nPercentage: 0.0%\n" +
		bar + " Disk Information " + bar + "\n" +
		"Partitions and Usage:\n=== Device: /dev/sda1 ===\n" +
		"  Mountpoint: /\n  File system type: ext4\n  Total Size: 1.00KB\n  Used: 512.00B\n  Free: 512.00B\n  Percentage: 50.0%\n" +
		"Total read: 2.00KB\nTotal write: 4.00KB\n" +
		bar + " Network Information " + bar + "\n" +
		"=== Interface: lo ===\n  IP Address: 127.0.0.1\n  Netmask: 255.0.0.0\n  Broadcast IP: None\n" +
		"Total Bytes Sent: 1.00B\nTotal Bytes Received: 2.00B\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, c.sampled)
}

func TestReporterDefaultInterval(t *testing.T) {
	c := newFakeCollector()
	require.NoError(t, New(c, nil, WithSections("cpu")).Write(&bytes.Buffer{}))
	assert.Equal(t, []time.Duration{DefaultSampleInterval}, c.sampled)
}

func TestReporterSections(t *testing.T) {
	c := newFakeCollector()
	var buf bytes.Buffer

	require.NoError(t, New(c, nil, WithSections("network", "boot")).Write(&buf))

	out := buf.String()
	assert.Empty(t, c.sampled, "cpu must not be sampled")
	assert.NotContains(t, out, "System Information")
	assert.Less(t, strings.Index(out, "Network Information"), strings.Index(out, "Boot Time"))
}

func TestReporterUnknownSection(t *testing.T) {
	err := New(newFakeCollector(), nil, WithSections("gpu")).Write(&bytes.Buffer{})
	assert.EqualError(t, err, `unknown report section "gpu"`)
}

func TestReporterUnavailable(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := newFakeCollector()
	c.bootErr = &system.UnavailableError{Category: "boot time"}
	c.cpuErr = &system.UnavailableError{Category: "cpu"}
	c.swapErr = &system.UnavailableError{Category: "swap"}
	c.partErr = &system.UnavailableError{Category: "disk partitions"}
	c.diskIOErr = &system.UnavailableError{Category: "disk io"}
	c.netIOErr = errors.New("boom")
	var buf bytes.Buffer

	require.NoError(t, New(c, zap.New(core)).Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "Boot Time: N/A\n")
	assert.Contains(t, out, "Physical cores: N/A\n")
	assert.Contains(t, out, "Current Frequency: N/A\nCPU Usage Per Core:\nTotal CPU Usage: N/A\n")
	assert.Contains(t, out, "Percentage: 25.0%\n==================== SWAP ====================\nTotal: N/A\n")
	assert.Contains(t, out, "Partitions and Usage: N/A\nTotal read: N/A\nTotal write: N/A\n")
	assert.Contains(t, out, "Total Bytes Sent: N/A\nTotal Bytes Received: N/A\n")
	// sections after a failure are still reported
	assert.Contains(t, out, "=== Interface: lo ===\n")

	assert.Equal(t, 5, logs.FilterMessage("metric unavailable").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to collect metric").Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestReporterWriteError(t *testing.T) {
	err := New(newFakeCollector(), nil, WithSections("system")).Write(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write system section")
}
