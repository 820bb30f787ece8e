package system

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.uber.org/zap"
)

// CPUSnapshot measures per-core utilization over interval and reports topology
// and frequency. A missing frequency source leaves Frequency nil.
func (c *HostCollector) CPUSnapshot(interval time.Duration) (CPUSnapshot, error) {
	if interval < 0 {
		interval = 0
	}

	var snap CPUSnapshot

	physical, err := c.os.cpuCounts(false)
	if err != nil {
		c.log.Debug("failed to count physical cores", zap.Error(err))
	}
	logical, err := c.os.cpuCounts(true)
	if err != nil {
		c.log.Debug("failed to count logical cores", zap.Error(err))
	}
	snap.PhysicalCores = physical
	snap.LogicalCores = logical
	snap.Frequency = c.cpuFrequency()

	before, err := c.os.cpuTimes(true)
	if err != nil {
		return CPUSnapshot{}, unavailable("cpu", fmt.Errorf("failed to get CPU times: %w", err))
	}
	c.os.sleep(interval)
	after, err := c.os.cpuTimes(true)
	if err != nil {
		return CPUSnapshot{}, unavailable("cpu", fmt.Errorf("failed to get CPU times: %w", err))
	}

	n := min(len(before), len(after))
	if n == 0 {
		return CPUSnapshot{}, unavailable("cpu", errors.New("no per-core CPU times reported"))
	}

	snap.PerCore = make([]float64, n)
	var totalBefore, totalAfter cpu.TimesStat
	for i := 0; i < n; i++ {
		snap.PerCore[i] = busyPercent(before[i], after[i])
		addTimes(&totalBefore, before[i])
		addTimes(&totalAfter, after[i])
	}
	snap.Total = busyPercent(totalBefore, totalAfter)

	return snap, nil
}

func (c *HostCollector) cpuFrequency() *CPUFrequency {
	freq, err := c.os.cpuFreq()
	if err == nil {
		return freq
	}
	c.log.Debug("cpufreq not available, falling back to CPU info", zap.Error(err))

	cpuInfo, err := c.os.cpuInfo()
	if err != nil || len(cpuInfo) == 0 || cpuInfo[0].Mhz == 0 {
		c.log.Debug("CPU frequency not available", zap.Error(err))
		return nil
	}
	// cpu info only knows the current clock; the limits stay zero
	return &CPUFrequency{Current: cpuInfo[0].Mhz}
}

// busyTimes splits a sample into busy and total seconds, guest time excluded
func busyTimes(t cpu.TimesStat) (busy, total float64) {
	total = t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
	busy = total - t.Idle - t.Iowait
	return busy, total
}

func busyPercent(before, after cpu.TimesStat) float64 {
	busy1, total1 := busyTimes(before)
	busy2, total2 := busyTimes(after)
	if total2 <= total1 || busy2 <= busy1 {
		return 0
	}
	return round1((busy2 - busy1) / (total2 - total1) * 100)
}

func addTimes(sum *cpu.TimesStat, t cpu.TimesStat) {
	sum.User += t.User
	sum.System += t.System
	sum.Idle += t.Idle
	sum.Nice += t.Nice
	sum.Iowait += t.Iowait
	sum.Irq += t.Irq
	sum.Softirq += t.Softirq
	sum.Steal += t.Steal
}

// MemorySnapshot returns virtual memory usage
func (c *HostCollector) MemorySnapshot() (MemorySnapshot, error) {
	memStat, err := c.os.virtualMem()
	if err != nil {
		return MemorySnapshot{}, unavailable("memory", fmt.Errorf("failed to get memory info: %w", err))
	}

	return MemorySnapshot{
		Total:       memStat.Total,
		Available:   memStat.Available,
		Used:        memStat.Used,
		UsedPercent: round1(memStat.UsedPercent),
	}, nil
}

// SwapSnapshot returns swap usage
func (c *HostCollector) SwapSnapshot() (SwapSnapshot, error) {
	swapStat, err := c.os.swapMem()
	if err != nil {
		return SwapSnapshot{}, unavailable("swap", fmt.Errorf("failed to get swap info: %w", err))
	}

	return SwapSnapshot{
		Total:       swapStat.Total,
		Free:        swapStat.Free,
		Used:        swapStat.Used,
		UsedPercent: round1(swapStat.UsedPercent),
	}, nil
}

// DiskPartitions lists mounted partitions with their usage.
//
// A partition whose usage cannot be read (permission denied, drive not
// ready) is left out of the result. Removable and network mounts fail
// transiently and must not abort the listing.
func (c *HostCollector) DiskPartitions() ([]DiskPartition, error) {
	partitions, err := c.os.partitions(false)
	if err != nil {
		return nil, unavailable("disk partitions", fmt.Errorf("failed to list partitions: %w", err))
	}

	results := make([]DiskPartition, 0, len(partitions))
	for _, part := range partitions {
		usage, err := c.os.usage(part.Mountpoint)
		if err != nil || usage == nil {
			c.log.Debug("skipping partition",
				zap.String("device", part.Device),
				zap.String("mountpoint", part.Mountpoint),
				zap.Error(err))
			continue
		}

		results = append(results, DiskPartition{
			Device:      part.Device,
			Mountpoint:  part.Mountpoint,
			FSType:      part.Fstype,
			Total:       usage.Total,
			Used:        usage.Used,
			Free:        usage.Free,
			UsedPercent: round1(usage.UsedPercent),
		})
	}
	return results, nil
}

// DiskIOTotals sums read and write counters over every disk.
// Partitions are skipped so their traffic is not counted twice.
func (c *HostCollector) DiskIOTotals() (DiskIOTotals, error) {
	counters, err := c.os.diskIO()
	if err != nil {
		return DiskIOTotals{}, unavailable("disk io", fmt.Errorf("failed to get disk counters: %w", err))
	}
	if len(counters) == 0 {
		return DiskIOTotals{}, unavailable("disk io", errors.New("no disk counters reported"))
	}

	var totals DiskIOTotals
	disks := 0
	for name, stat := range counters {
		if !c.os.wholeDisk(name) {
			continue
		}
		totals.ReadBytes += stat.ReadBytes
		totals.WriteBytes += stat.WriteBytes
		disks++
	}
	if disks == 0 {
		return DiskIOTotals{}, unavailable("disk io", errors.New("no whole disk counters reported"))
	}
	return totals, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
