// Package suite runs the check groups in order and turns their results
// into a summary with an overall verdict.
package suite

import (
	"context"

	"github.com/aeonsage/colabcheck/pkg/check"
)

// Sink receives suite progress as it happens.
type Sink interface {
	GroupStarted(title string)
	ResultRecorded(check.Result)
}

// Group is one ordered set of related checks.
type Group interface {
	Run(ctx context.Context, rec check.Recorder)
}

// Group titles shown before each section of the run.
const (
	TitleSystem  = "系统信息检查"
	TitleTools   = "Node.js 环境检查"
	TitleProject = "AeonSage 安装检查"
	TitleNetwork = "网络连接检查"
)

// Suite holds the four check groups. Nil groups are skipped, which
// tests use to run a single group in isolation.
type Suite struct {
	System  Group
	Tools   Group
	Project Group
	Network Group
	Sink    Sink
}

// Run executes the groups in their fixed order and returns the summary.
func (s *Suite) Run(ctx context.Context) Summary {
	rec := NewRecorder(s.Sink)

	groups := []struct {
		title string
		group Group
	}{
		{TitleSystem, s.System},
		{TitleTools, s.Tools},
		{TitleProject, s.Project},
		{TitleNetwork, s.Network},
	}
	for _, g := range groups {
		if g.group == nil {
			continue
		}
		if s.Sink != nil {
			s.Sink.GroupStarted(g.title)
		}
		g.group.Run(ctx, rec)
	}

	return rec.summary()
}

// Summary is the aggregated outcome of a full run.
type Summary struct {
	Results []check.Result
	Passed  int
	Failed  int
	Verdict Verdict
}

// SuccessRate returns the passed share in percent. An empty run is 0,
// not a division by zero.
func (s Summary) SuccessRate() float64 {
	total := s.Passed + s.Failed
	if total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(total) * 100
}
