package system

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"slices"

	psnet "github.com/shirou/gopsutil/v4/net"
	"go.uber.org/zap"
)

const (
	broadcastMAC = "ff:ff:ff:ff:ff:ff"
	zeroMAC      = "00:00:00:00:00:00"
)

// NetworkInterfaces lists every interface, virtual and physical.
// It returns an empty slice when the host reports none.
func (c *HostCollector) NetworkInterfaces() []NetworkInterface {
	stats, err := c.os.interfaces()
	if err != nil {
		c.log.Warn("failed to list network interfaces", zap.Error(err))
		return []NetworkInterface{}
	}

	results := make([]NetworkInterface, 0, len(stats))
	for _, stat := range stats {
		results = append(results, convertInterface(stat))
	}
	return results
}

// NetworkIOTotals sums traffic counters over every interface
func (c *HostCollector) NetworkIOTotals() (NetworkIOTotals, error) {
	counters, err := c.os.netIO(false)
	if err != nil {
		return NetworkIOTotals{}, unavailable("network io", fmt.Errorf("failed to get network counters: %w", err))
	}
	if len(counters) == 0 {
		return NetworkIOTotals{}, unavailable("network io", errors.New("no network counters reported"))
	}

	var totals NetworkIOTotals
	for _, stat := range counters {
		totals.BytesSent += stat.BytesSent
		totals.BytesRecv += stat.BytesRecv
	}
	return totals, nil
}

// convertInterface lists network addresses first and the hardware address last
func convertInterface(stat psnet.InterfaceStat) NetworkInterface {
	iface := NetworkInterface{Name: stat.Name, Addrs: []NetworkAddress{}}
	broadcast := slices.Contains(stat.Flags, "broadcast")

	for _, addr := range stat.Addrs {
		iface.Addrs = append(iface.Addrs, classifyAddr(addr.Addr, broadcast))
	}

	hw := stat.HardwareAddr
	// the Go runtime hides all-zero hardware addresses, loopback included
	if hw == "" && slices.Contains(stat.Flags, "loopback") {
		hw = zeroMAC
	}
	if hw != "" {
		link := NetworkAddress{Family: FamilyLinkLayer, Address: hw}
		if broadcast {
			link.Broadcast = broadcastMAC
		}
		iface.Addrs = append(iface.Addrs, link)
	}
	return iface
}

// classifyAddr decides the family of a CIDR or bare address once, so nothing
// downstream has to parse it again
func classifyAddr(raw string, broadcast bool) NetworkAddress {
	prefix, err := netip.ParsePrefix(raw)
	if err != nil {
		if addr, err := netip.ParseAddr(raw); err == nil && addr.Is4() {
			return NetworkAddress{Family: FamilyIPv4, Address: addr.String()}
		}
		return NetworkAddress{Family: FamilyOther, Address: raw}
	}

	addr := prefix.Addr()
	if !addr.Is4() {
		return NetworkAddress{Family: FamilyOther, Address: addr.String()}
	}

	mask := net.CIDRMask(prefix.Bits(), 32)
	out := NetworkAddress{
		Family:  FamilyIPv4,
		Address: addr.String(),
		Netmask: net.IP(mask).String(),
	}
	if broadcast {
		ip := addr.As4()
		for i := range ip {
			ip[i] |= ^mask[i]
		}
		out.Broadcast = netip.AddrFrom4(ip).String()
	}
	return out
}
