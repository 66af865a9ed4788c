//go:build linux

package sysinfo

import (
	"os"
	"strings"
)

// platformString builds a description like "Linux 6.8.0-49-generic" from
// the kernel's proc files. Minimal containers may mount no procfs, in
// which case we fall back to the build constants.
func platformString() string {
	ostype, err := os.ReadFile("/proc/sys/kernel/ostype")
	if err != nil {
		return fallbackPlatform()
	}
	osrelease, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return fallbackPlatform()
	}
	return strings.TrimSpace(string(ostype)) + " " + strings.TrimSpace(string(osrelease))
}
