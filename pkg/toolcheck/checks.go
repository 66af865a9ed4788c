package toolcheck

import (
	"context"
	"log/slog"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
	"github.com/aeonsage/colabcheck/pkg/semverx"
)

// tools lists the probed commands in display order.
var tools = []struct {
	id      check.ID
	command string
}{
	{check.ToolNode, "node"},
	{check.ToolNPM, "npm"},
	{check.ToolPNPM, "pnpm"},
	{check.ToolGit, "git"},
}

// Checks verifies the Node.js toolchain: node, npm, pnpm and git.
type Checks struct {
	Probe probe.Runner
}

// Run probes each tool with --version and records one result per tool.
// A tool that cannot report its version counts as not installed.
func (c *Checks) Run(ctx context.Context, rec check.Recorder) {
	if c.Probe == nil {
		c.Probe = &probe.ExecRunner{}
	}
	for _, tool := range tools {
		rec.Record(c.version(ctx, tool.id, tool.command))
	}
}

func (c *Checks) version(ctx context.Context, id check.ID, command string) check.Result {
	outcome := c.Probe.Run(ctx, command, "--version")
	if !outcome.Succeeded {
		return check.Fail(id, "未安装", nil)
	}

	result := check.Pass(id, outcome.Output)
	if v, err := semverx.Extract(outcome.Output); err == nil {
		result.AddDetailf("version: %s", v)
	} else {
		slog.Debug("no version in tool output", "cmd", command, "output", outcome.Output)
	}
	return result
}
