package report

import (
	"fmt"
	"strconv"
	"strings"

	"hostreport/internal/system"
)

const (
	bannerWidth    = 40
	subBannerWidth = 20
	notAvailable   = "N/A"
	none           = "None"
)

// Banner returns a section heading line
func Banner(title string) string {
	return banner(title, bannerWidth)
}

// SubBanner returns the narrower heading used inside a section
func SubBanner(title string) string {
	return banner(title, subBannerWidth)
}

func banner(title string, width int) string {
	bar := strings.Repeat("=", width)
	return bar + " " + title + " " + bar + "\n"
}

func line(sb *strings.Builder, label string, value string) {
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteByte('\n')
}

func optional(v string) string {
	if v == "" {
		return none
	}
	return v
}

// SystemSection renders host identification
func SystemSection(id system.Identity) string {
	var sb strings.Builder
	line(&sb, "System", id.OS)
	line(&sb, "Node Name", id.Node)
	line(&sb, "Release", id.Release)
	line(&sb, "Version", id.Version)
	line(&sb, "Machine", id.Machine)
	line(&sb, "Processor", id.Processor)
	return sb.String()
}

// BootSection renders the boot time in the location carried by the timestamp
func BootSection(info system.BootInfo) string {
	bt := info.BootTime
	var sb strings.Builder
	line(&sb, "Boot Time", fmt.Sprintf("%d/%d/%d %d:%d:%d",
		bt.Year(), int(bt.Month()), bt.Day(), bt.Hour(), bt.Minute(), bt.Second()))
	return sb.String()
}

// CPUSection renders core counts, frequencies and utilization
func CPUSection(cpu system.CPUSnapshot) string {
	var sb strings.Builder
	line(&sb, "Physical cores", strconv.Itoa(cpu.PhysicalCores))
	line(&sb, "Total cores", strconv.Itoa(cpu.LogicalCores))
	if f := cpu.Frequency; f != nil {
		line(&sb, "Max Frequency", FormatFrequency(f.Max))
		line(&sb, "Min Frequency", FormatFrequency(f.Min))
		line(&sb, "Current Frequency", FormatFrequency(f.Current))
	} else {
		line(&sb, "Max Frequency", notAvailable)
		line(&sb, "Min Frequency", notAvailable)
		line(&sb, "Current Frequency", notAvailable)
	}
	sb.WriteString("CPU Usage Per Core:\n")
	for i, pct := range cpu.PerCore {
		line(&sb, "Core "+strconv.Itoa(i), FormatPercent(pct)+"%")
	}
	line(&sb, "Total CPU Usage", FormatPercent(cpu.Total)+"%")
	return sb.String()
}

// MemorySection renders virtual memory usage
func MemorySection(m system.MemorySnapshot) string {
	var sb strings.Builder
	line(&sb, "Total", FormatByteSize(m.Total))
	line(&sb, "Available", FormatByteSize(m.Available))
	line(&sb, "Used", FormatByteSize(m.Used))
	line(&sb, "Percentage", FormatPercent(m.UsedPercent)+"%")
	return sb.String()
}

// SwapSection renders swap usage
func SwapSection(s system.SwapSnapshot) string {
	var sb strings.Builder
	line(&sb, "Total", FormatByteSize(s.Total))
	line(&sb, "Free", FormatByteSize(s.Free))
	line(&sb, "Used", FormatByteSize(s.Used))
	line(&sb, "Percentage", FormatPercent(s.UsedPercent)+"%")
	return sb.String()
}

// PartitionsSection renders every partition with its usage
func PartitionsSection(parts []system.DiskPartition) string {
	var sb strings.Builder
	sb.WriteString("Partitions and Usage:\n")
	for _, p := range parts {
		sb.WriteString("=== Device: " + p.Device + " ===\n")
		line(&sb, "  Mountpoint", p.Mountpoint)
		line(&sb, "  File system type", p.FSType)
		line(&sb, "  Total Size", FormatByteSize(p.Total))
		line(&sb, "  Used", FormatByteSize(p.Used))
		line(&sb, "  Free", FormatByteSize(p.Free))
		line(&sb, "  Percentage", FormatPercent(p.UsedPercent)+"%")
	}
	return sb.String()
}

// DiskIOSection renders cumulative disk traffic
func DiskIOSection(totals system.DiskIOTotals) string {
	var sb strings.Builder
	line(&sb, "Total read", FormatByteSize(totals.ReadBytes))
	line(&sb, "Total write", FormatByteSize(totals.WriteBytes))
	return sb.String()
}

// InterfacesSection renders each interface followed by its IPv4 and
// link-layer addresses. Other address families are not shown.
func InterfacesSection(ifaces []system.NetworkInterface) string {
	var sb strings.Builder
	for _, iface := range ifaces {
		sb.WriteString("=== Interface: " + iface.Name + " ===\n")
		for _, addr := range iface.Addrs {
			switch addr.Family {
			case system.FamilyIPv4:
				line(&sb, "  IP Address", addr.Address)
				line(&sb, "  Netmask", optional(addr.Netmask))
				line(&sb, "  Broadcast IP", optional(addr.Broadcast))
			case system.FamilyLinkLayer:
				line(&sb, "  MAC Address", addr.Address)
				line(&sb, "  Netmask", optional(addr.Netmask))
				line(&sb, "  Broadcast MAC", optional(addr.Broadcast))
			}
		}
	}
	return sb.String()
}

// NetworkIOSection renders cumulative network traffic
func NetworkIOSection(totals system.NetworkIOTotals) string {
	var sb strings.Builder
	line(&sb, "Total Bytes Sent", FormatByteSize(totals.BytesSent))
	line(&sb, "Total Bytes Received", FormatByteSize(totals.BytesRecv))
	return sb.String()
}

// UnavailableSection renders each label with a N/A value
func UnavailableSection(labels ...string) string {
	var sb strings.Builder
	for _, label := range labels {
		line(&sb, label, notAvailable)
	}
	return sb.String()
}
