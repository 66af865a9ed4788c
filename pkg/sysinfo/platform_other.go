//go:build !linux

package sysinfo

func platformString() string {
	return fallbackPlatform()
}
