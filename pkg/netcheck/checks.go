package netcheck

import (
	"context"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
)

// probes lists the connectivity probes in display order. Reachability
// is delegated to the same tools a user would reach for; the checklist
// never opens sockets of its own.
var probes = []struct {
	id      check.ID
	argv    []string
	passMsg string
	failMsg string
}{
	{check.NetInternet, []string{"ping", "-c", "1", "8.8.8.8"}, "正常", "异常"},
	{check.NetGitHub, []string{"curl", "-s", "https://github.com", "--max-time", "10"}, "可访问", "无法访问"},
	{check.NetRegistry, []string{"npm", "ping"}, "响应正常", "无响应"},
}

// Checks verifies internet, GitHub and npm registry reachability.
type Checks struct {
	Probe probe.Runner
}

// Run records one result per connectivity probe.
func (c *Checks) Run(ctx context.Context, rec check.Recorder) {
	if c.Probe == nil {
		c.Probe = &probe.ExecRunner{}
	}
	for _, p := range probes {
		outcome := c.Probe.Run(ctx, p.argv[0], p.argv[1:]...)
		if outcome.Succeeded {
			rec.Record(check.Pass(p.id, p.passMsg))
		} else {
			rec.Record(check.Fail(p.id, p.failMsg, nil))
		}
	}
}
