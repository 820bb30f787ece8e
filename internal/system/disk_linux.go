//go:build linux

package system

import (
	"os"
	"path/filepath"
	"strings"
)

const sysBlock = "/sys/block"

// isWholeDisk reports whether name is a block device rather than a partition
func isWholeDisk(name string) bool {
	_, err := os.Stat(filepath.Join(sysBlock, strings.ReplaceAll(name, "/", "!")))
	return err == nil
}
