package system

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// unameInfo carries the uname fields gopsutil does not expose
type unameInfo struct {
	Sysname string
	Version string
}

// backend is the set of OS queries HostCollector depends on
type backend struct {
	hostInfo   func() (*host.InfoStat, error)
	uname      func() (unameInfo, error)
	bootTime   func() (uint64, error)
	cpuInfo    func() ([]cpu.InfoStat, error)
	cpuCounts  func(logical bool) (int, error)
	cpuTimes   func(percpu bool) ([]cpu.TimesStat, error)
	cpuFreq    func() (*CPUFrequency, error)
	virtualMem func() (*mem.VirtualMemoryStat, error)
	swapMem    func() (*mem.SwapMemoryStat, error)
	partitions func(all bool) ([]disk.PartitionStat, error)
	usage      func(path string) (*disk.UsageStat, error)
	diskIO     func(names ...string) (map[string]disk.IOCountersStat, error)
	wholeDisk  func(name string) bool
	interfaces func() (psnet.InterfaceStatList, error)
	netIO      func(pernic bool) ([]psnet.IOCountersStat, error)
	sleep      func(d time.Duration)
}

func hostBackend() backend {
	return backend{
		hostInfo:   host.Info,
		uname:      readUname,
		bootTime:   host.BootTime,
		cpuInfo:    cpu.Info,
		cpuCounts:  cpu.Counts,
		cpuTimes:   cpu.Times,
		cpuFreq:    readCPUFrequency,
		virtualMem: mem.VirtualMemory,
		swapMem:    mem.SwapMemory,
		partitions: disk.Partitions,
		usage:      disk.Usage,
		diskIO:     disk.IOCounters,
		wholeDisk:  isWholeDisk,
		interfaces: psnet.Interfaces,
		netIO:      psnet.IOCounters,
		sleep:      time.Sleep,
	}
}
