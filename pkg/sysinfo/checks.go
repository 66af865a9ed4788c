package sysinfo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
)

// gpuEnvVar is set by Colab when a GPU accelerator is attached. Presence
// alone signals availability; the value may be empty.
const gpuEnvVar = "COLAB_GPU"

// Checks probes general host facts: runtime, platform, word size, GPU
// and disk space. None of these block readiness.
type Checks struct {
	Env   EnvGetter
	Probe probe.Runner
	Info  HostInfo
}

// Run records the system info results in display order.
func (c *Checks) Run(ctx context.Context, rec check.Recorder) {
	if c.Env == nil {
		c.Env = &RealEnvGetter{}
	}
	if c.Probe == nil {
		c.Probe = &probe.ExecRunner{}
	}
	if c.Info == nil {
		c.Info = &RealHostInfo{}
	}

	rec.Record(check.Pass(check.RuntimeVersion, c.Info.RuntimeVersion()))

	platform := check.Pass(check.Platform, c.Info.Platform())
	platform.AddDetailf("os: %s", c.Info.OS())
	platform.AddDetailf("arch: %s", c.Info.Arch())
	rec.Record(platform)

	rec.Record(check.Pass(check.Architecture, fmt.Sprintf("%dbit", c.Info.BitWidth())))

	if _, ok := c.Env.LookupEnv(gpuEnvVar); ok {
		rec.Record(check.Pass(check.GPU, "可用"))
	} else {
		rec.Record(check.Fail(check.GPU, "不可用", nil))
	}

	rec.Record(c.diskSpace(ctx))
}

// diskSpace parses `df -h /`: the second line describes the root
// filesystem, with used and available in columns three and four. Any
// shape surprise is reported as a failure, never skipped.
func (c *Checks) diskSpace(ctx context.Context) check.Result {
	outcome := c.Probe.Run(ctx, "df", "-h", "/")
	if !outcome.Succeeded {
		return check.Fail(check.DiskSpace, "无法获取磁盘信息", nil)
	}

	lines := strings.Split(outcome.Output, "\n")
	if len(lines) < 2 {
		slog.Debug("df output not parseable", "output", outcome.Output)
		return check.Fail(check.DiskSpace, "无法获取磁盘信息", nil)
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 4 {
		slog.Debug("df output not parseable", "line", lines[1])
		return check.Fail(check.DiskSpace, "无法获取磁盘信息", nil)
	}

	return check.Pass(check.DiskSpace, fmt.Sprintf("已用: %s, 可用: %s", fields[2], fields[3]))
}
