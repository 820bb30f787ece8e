//go:build !linux

package system

func isWholeDisk(string) bool { return true }
