package colabcheck_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
	"github.com/aeonsage/colabcheck/pkg/projectcheck"
	"github.com/aeonsage/colabcheck/pkg/report"
	"github.com/aeonsage/colabcheck/pkg/suite"
	"github.com/aeonsage/colabcheck/pkg/sysinfo"
	"github.com/aeonsage/colabcheck/pkg/toolcheck"
)

// Integration tests verify the Real* collaborators against the actual
// host. Unit tests in each package cover edge cases; the network group
// stays out because test hosts may be offline.

type listRecorder struct {
	results []check.Result
}

func (r *listRecorder) Record(res check.Result) { r.results = append(r.results, res) }

func TestIntegration_ProbeRunner(t *testing.T) {
	runner := &probe.ExecRunner{}

	outcome := runner.Run(context.Background(), "sh", "-c", "echo integration")

	if !outcome.Succeeded {
		t.Fatalf("Succeeded = false, output: %q", outcome.Output)
	}
	if outcome.Output != "integration" {
		t.Errorf("Output = %q, want %q", outcome.Output, "integration")
	}
}

func TestIntegration_SystemChecks(t *testing.T) {
	rec := &listRecorder{}
	checks := &sysinfo.Checks{}

	checks.Run(context.Background(), rec)

	if len(rec.results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(rec.results))
	}
	if got := rec.results[0].Message; got != runtime.Version() {
		t.Errorf("runtime version = %q, want %q", got, runtime.Version())
	}
	if arch := rec.results[2].Message; arch != "64bit" && arch != "32bit" {
		t.Errorf("architecture = %q, want 64bit or 32bit", arch)
	}

	disk := rec.results[4]
	if disk.OK() && !strings.HasPrefix(disk.Message, "已用: ") {
		t.Errorf("disk message = %q, want 已用 prefix", disk.Message)
	}
	if !disk.OK() && disk.Message != "无法获取磁盘信息" {
		t.Errorf("disk message = %q, want 无法获取磁盘信息", disk.Message)
	}
}

func TestIntegration_ToolChecks(t *testing.T) {
	rec := &listRecorder{}
	checks := &toolcheck.Checks{}

	checks.Run(context.Background(), rec)

	if len(rec.results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(rec.results))
	}
	for _, res := range rec.results {
		if res.Message == "" {
			t.Errorf("%s: empty message", res.ID)
		}
		if !res.OK() && res.Message != "未安装" {
			t.Errorf("%s: message = %q, want 未安装", res.ID, res.Message)
		}
	}
}

func TestIntegration_ProjectChecks(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "aeonsage")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := []byte(`{"name":"aeonsage","version":"0.3.1"}`)
	if err := os.WriteFile(filepath.Join(dir, "package.json"), manifest, 0o644); err != nil {
		t.Fatal(err)
	}
	for _, sub := range []string{"node_modules", "dist"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(root)

	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rec := &listRecorder{}
	checks := &projectcheck.Checks{}
	checks.Run(context.Background(), rec)

	// The CLI probes run the real pnpm, which this host may not have;
	// their status is environment-dependent but they must be recorded.
	if len(rec.results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(rec.results))
	}
	for _, res := range rec.results[:4] {
		if !res.OK() {
			t.Errorf("%s: status = %v, message: %s", res.ID, res.Status, res.Message)
		}
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("working directory = %q, want %q restored", after, before)
	}
}

func TestIntegration_SuiteWithReport(t *testing.T) {
	t.Chdir(t.TempDir()) // no project checkout here

	var buf bytes.Buffer
	printer := &report.Printer{Out: &buf}
	s := &suite.Suite{
		System:  &sysinfo.Checks{},
		Project: &projectcheck.Checks{},
		Sink:    printer,
	}

	summary := s.Run(context.Background())
	printer.Summary(summary)

	if summary.Passed+summary.Failed != len(summary.Results) {
		t.Errorf("tally %d+%d does not match %d results",
			summary.Passed, summary.Failed, len(summary.Results))
	}
	if summary.Verdict != suite.NotConfigured {
		t.Errorf("verdict = %s, want NOT_CONFIGURED", summary.Verdict)
	}

	out := buf.String()
	for _, want := range []string{
		"=== 系统信息检查 ===",
		"=== AeonSage 安装检查 ===",
		"项目目录: 未找到",
		"📊 测试总结:",
		"📋 详细结果:",
		"  ❌ 环境未配置，请运行安装脚本",
		"💡 建议修复步骤:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}
