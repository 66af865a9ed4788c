package sysinfo

import (
	"runtime"
	"strconv"
)

// HostInfo abstracts host facts for testability.
type HostInfo interface {
	RuntimeVersion() string
	Platform() string
	OS() string
	Arch() string
	BitWidth() int
}

// RealHostInfo returns actual host information.
type RealHostInfo struct{}

func (r *RealHostInfo) RuntimeVersion() string { return runtime.Version() }
func (r *RealHostInfo) Platform() string       { return platformString() }
func (r *RealHostInfo) OS() string             { return runtime.GOOS }
func (r *RealHostInfo) Arch() string           { return runtime.GOARCH }

// BitWidth reports the native word size of this build, 32 or 64.
func (r *RealHostInfo) BitWidth() int { return strconv.IntSize }
