//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || aix

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func readUname() (unameInfo, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return unameInfo{}, fmt.Errorf("failed to call uname: %w", err)
	}
	return unameInfo{
		Sysname: unix.ByteSliceToString(u.Sysname[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
	}, nil
}
