package sysinfo

import "runtime"

func fallbackPlatform() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}
