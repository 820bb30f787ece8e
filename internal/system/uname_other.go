//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || aix)

package system

import (
	"errors"
	"runtime"
)

func readUname() (unameInfo, error) {
	return unameInfo{}, errors.New("uname is not supported on " + runtime.GOOS)
}
