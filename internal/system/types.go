package system

import "time"

// Identity represents static system identification
type Identity struct {
	OS        string
	Node      string
	Release   string
	Version   string
	Machine   string
	Processor string
}

// BootInfo holds the moment the host was booted
type BootInfo struct {
	BootTime time.Time
}

// CPUFrequency holds processor clock rates in MHz
type CPUFrequency struct {
	Current float64
	Min     float64
	Max     float64
}

// CPUSnapshot represents CPU topology and utilization measured over a sample window
type CPUSnapshot struct {
	PhysicalCores int
	LogicalCores  int
	Frequency     *CPUFrequency
	PerCore       []float64
	Total         float64
}

// MemorySnapshot represents virtual memory usage
type MemorySnapshot struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// SwapSnapshot represents swap usage. All fields are zero when no swap is configured.
type SwapSnapshot struct {
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// DiskPartition represents a mounted partition together with its usage
type DiskPartition struct {
	Device      string
	Mountpoint  string
	FSType      string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskIOTotals holds cumulative disk counters since boot
type DiskIOTotals struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// AddressFamily classifies a network address
type AddressFamily int

const (
	FamilyOther AddressFamily = iota
	FamilyIPv4
	FamilyLinkLayer
)

func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyLinkLayer:
		return "link"
	default:
		return "other"
	}
}

// NetworkAddress is one address bound to an interface.
// Netmask and Broadcast are empty when the OS reports none.
type NetworkAddress struct {
	Family    AddressFamily
	Address   string
	Netmask   string
	Broadcast string
}

// NetworkInterface represents a physical or virtual interface
type NetworkInterface struct {
	Name  string
	Addrs []NetworkAddress
}

// NetworkIOTotals holds cumulative traffic counters since boot
type NetworkIOTotals struct {
	BytesSent uint64
	BytesRecv uint64
}
