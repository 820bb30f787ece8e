package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"hostreport/internal/system"
)

// DefaultSampleInterval is the CPU measurement window when none is configured
const DefaultSampleInterval = time.Second

// Reporter renders a text report from a Collector. It never talks to the OS
// itself.
type Reporter struct {
	collector system.Collector
	log       *zap.Logger
	interval  time.Duration
	sections  []string
}

type Option func(*Reporter)

// WithSampleInterval sets how long the CPU section measures utilization
func WithSampleInterval(d time.Duration) Option {
	return func(r *Reporter) { r.interval = d }
}

// WithSections limits the report to the named sections, in the given order
func WithSections(sections ...string) Option {
	return func(r *Reporter) { r.sections = sections }
}

// New creates a Reporter over collector
func New(collector system.Collector, logger *zap.Logger, opts ...Option) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reporter{
		collector: collector,
		log:       logger.Named("report"),
		interval:  DefaultSampleInterval,
		sections:  []string{"system", "boot", "cpu", "memory", "disk", "network"},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write renders every configured section to w. Unavailable metrics are shown
// as N/A; only an unknown section name or a failed write is returned.
func (r *Reporter) Write(w io.Writer) error {
	for _, name := range r.sections {
		render, ok := r.renderer(name)
		if !ok {
			return fmt.Errorf("unknown report section %q", name)
		}
		if _, err := io.WriteString(w, render()); err != nil {
			return fmt.Errorf("failed to write %s section: %w", name, err)
		}
	}
	return nil
}

func (r *Reporter) renderer(name string) (func() string, bool) {
	switch name {
	case "system":
		return r.systemInfo, true
	case "boot":
		return r.bootTime, true
	case "cpu":
		return r.cpuInfo, true
	case "memory":
		return r.memoryInfo, true
	case "disk":
		return r.diskInfo, true
	case "network":
		return r.networkInfo, true
	}
	return nil, false
}

func (r *Reporter) systemInfo() string {
	return Banner("System Information") + SystemSection(r.collector.SystemIdentity())
}

func (r *Reporter) bootTime() string {
	out := Banner("Boot Time")
	info, err := r.collector.BootInfo()
	if err != nil {
		r.unavailable("boot time", err)
		return out + UnavailableSection("Boot Time")
	}
	return out + BootSection(info)
}

func (r *Reporter) cpuInfo() string {
	out := Banner("CPU Info")
	r.log.Debug("sampling CPU utilization", zap.Duration("interval", r.interval))
	snap, err := r.collector.CPUSnapshot(r.interval)
	if err != nil {
		r.unavailable("cpu", err)
		return out +
			UnavailableSection("Physical cores", "Total cores", "Max Frequency", "Min Frequency", "Current Frequency") +
			"CPU Usage Per Core:\n" +
			UnavailableSection("Total CPU Usage")
	}
	return out + CPUSection(snap)
}

func (r *Reporter) memoryInfo() string {
	var sb strings.Builder
	sb.WriteString(Banner("Memory Information"))
	if m, err := r.collector.MemorySnapshot(); err != nil {
		r.unavailable("memory", err)
		sb.WriteString(UnavailableSection("Total", "Available", "Used", "Percentage"))
	} else {
		sb.WriteString(MemorySection(m))
	}

	sb.WriteString(SubBanner("SWAP"))
	if s, err := r.collector.SwapSnapshot(); err != nil {
		r.unavailable("swap", err)
		sb.WriteString(UnavailableSection("Total", "Free", "Used", "Percentage"))
	} else {
		sb.WriteString(SwapSection(s))
	}
	return sb.String()
}

func (r *Reporter) diskInfo() string {
	var sb strings.Builder
	sb.WriteString(Banner("Disk Information"))
	if parts, err := r.collector.DiskPartitions(); err != nil {
		r.unavailable("disk partitions", err)
		sb.WriteString(UnavailableSection("Partitions and Usage"))
	} else {
		sb.WriteString(PartitionsSection(parts))
	}

	if totals, err := r.collector.DiskIOTotals(); err != nil {
		r.unavailable("disk io", err)
		sb.WriteString(UnavailableSection("Total read", "Total write"))
	} else {
		sb.WriteString(DiskIOSection(totals))
	}
	return sb.String()
}

func (r *Reporter) networkInfo() string {
	var sb strings.Builder
	sb.WriteString(Banner("Network Information"))
	sb.WriteString(InterfacesSection(r.collector.NetworkInterfaces()))

	if totals, err := r.collector.NetworkIOTotals(); err != nil {
		r.unavailable("network io", err)
		sb.WriteString(UnavailableSection("Total Bytes Sent", "Total Bytes Received"))
	} else {
		sb.WriteString(NetworkIOSection(totals))
	}
	return sb.String()
}

func (r *Reporter) unavailable(category string, err error) {
	if errors.Is(err, system.ErrUnavailable) {
		r.log.Warn("metric unavailable", zap.String("category", category), zap.Error(err))
		return
	}
	r.log.Error("failed to collect metric", zap.String("category", category), zap.Error(err))
}
