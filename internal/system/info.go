package system

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var osNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Darwin",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
	"solaris": "SunOS",
	"aix":     "AIX",
}

// SystemIdentity returns general system identification.
// Fields the host does not report are left empty.
func (c *HostCollector) SystemIdentity() Identity {
	var id Identity

	hostInfo, err := c.os.hostInfo()
	if err != nil {
		c.log.Warn("failed to get host info", zap.Error(err))
	} else {
		id.OS = osName(hostInfo.OS)
		id.Node = hostInfo.Hostname
		id.Release = hostInfo.KernelVersion
		id.Machine = hostInfo.KernelArch
	}

	// uname is authoritative for the system name and the kernel build string
	if u, err := c.os.uname(); err != nil {
		c.log.Debug("uname not available", zap.Error(err))
	} else {
		if u.Sysname != "" {
			id.OS = u.Sysname
		}
		id.Version = u.Version
	}

	cpuInfo, err := c.os.cpuInfo()
	if err != nil {
		c.log.Debug("failed to get CPU info", zap.Error(err))
	} else if len(cpuInfo) > 0 {
		id.Processor = strings.TrimSpace(cpuInfo[0].ModelName)
	}

	return id
}

// BootInfo returns the host boot time
func (c *HostCollector) BootInfo() (BootInfo, error) {
	secs, err := c.os.bootTime()
	if err != nil {
		return BootInfo{}, unavailable("boot time", fmt.Errorf("failed to get boot time: %w", err))
	}
	if secs == 0 {
		return BootInfo{}, unavailable("boot time", nil)
	}
	return BootInfo{BootTime: time.Unix(int64(secs), 0)}, nil
}

func osName(goos string) string {
	if name, ok := osNames[strings.ToLower(goos)]; ok {
		return name
	}
	if goos == "" {
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
