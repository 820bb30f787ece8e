package system

import (
	"time"

	"go.uber.org/zap"
)

// Collector produces point-in-time snapshots of the host, one category per call.
// Implementations never print; failures are returned to the caller.
type Collector interface {
	SystemIdentity() Identity
	BootInfo() (BootInfo, error)
	// CPUSnapshot blocks for interval while per-core utilization is measured.
	CPUSnapshot(interval time.Duration) (CPUSnapshot, error)
	MemorySnapshot() (MemorySnapshot, error)
	SwapSnapshot() (SwapSnapshot, error)
	// DiskPartitions omits partitions whose usage cannot be read.
	DiskPartitions() ([]DiskPartition, error)
	DiskIOTotals() (DiskIOTotals, error)
	NetworkInterfaces() []NetworkInterface
	NetworkIOTotals() (NetworkIOTotals, error)
}

// HostCollector reads the local host through gopsutil
type HostCollector struct {
	os  backend
	log *zap.Logger
}

var _ Collector = (*HostCollector)(nil)

// NewCollector returns a collector for the local host
func NewCollector(logger *zap.Logger) *HostCollector {
	return newHostCollector(hostBackend(), logger)
}

func newHostCollector(b backend, logger *zap.Logger) *HostCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HostCollector{os: b, log: logger.Named("collector")}
}
