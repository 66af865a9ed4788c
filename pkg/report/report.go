// Package report renders the checklist for a person watching the run:
// a banner, group headers, one live line per result and a closing
// summary with the verdict.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-runewidth"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/suite"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

var separator = strings.Repeat("=", 50)

// nameColWidth is the display width of the name column in the detail
// table. Padding counts terminal cells, not runes: the names mix CJK
// and Latin text.
const nameColWidth = 20

// Printer writes the report. The zero value prints to stdout.
type Printer struct {
	Out     io.Writer
	Verbose bool // also print result details

	groups int
}

func (p *Printer) w() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Banner prints the tool heading.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w(), "🤖 AeonSage Colab 环境验证")
	fmt.Fprintln(p.w(), separator)
}

// GroupStarted implements suite.Sink. Every group after the first is
// preceded by a blank line.
func (p *Printer) GroupStarted(title string) {
	if p.groups > 0 {
		fmt.Fprintln(p.w())
	}
	p.groups++
	fmt.Fprintf(p.w(), "=== %s ===\n", title)
}

// ResultRecorded implements suite.Sink.
func (p *Printer) ResultRecorded(r check.Result) {
	mark := green + "✓" + reset
	if !r.OK() {
		mark = red + "✗" + reset
	}
	fmt.Fprintf(p.w(), "%s %s: %s\n", mark, r.Name, r.Message)
	if p.Verbose {
		for _, d := range r.Details {
			fmt.Fprintf(p.w(), "      %s\n", d)
		}
	}
}

// Summary prints the totals, the detail table, the verdict and, when
// the environment is not ready, the remediation hints.
func (p *Printer) Summary(s suite.Summary) {
	fmt.Fprintln(p.w())
	fmt.Fprintln(p.w(), separator)
	fmt.Fprintf(p.w(), "📊 测试总结: %d 通过, %d 失败\n", s.Passed, s.Failed)
	fmt.Fprintf(p.w(), "📈 成功率: %.1f%%\n", s.SuccessRate())

	fmt.Fprintln(p.w())
	fmt.Fprintln(p.w(), "📋 详细结果:")
	for _, r := range s.Results {
		status, color := "PASS", green
		if !r.OK() {
			status, color = "FAIL", red
		}
		fmt.Fprintf(p.w(), "  %s%-4s%s | %s | %s\n",
			color, status, reset, runewidth.FillRight(r.Name, nameColWidth), r.Message)
	}

	fmt.Fprintln(p.w())
	fmt.Fprintln(p.w(), "🎯 环境状态:")
	switch s.Verdict {
	case suite.Ready:
		fmt.Fprintln(p.w(), "  ✅ 环境配置完整，可以开始使用 AeonSage")
	case suite.Partial:
		fmt.Fprintln(p.w(), "  ⚠️  环境部分配置，需要修复")
	default:
		fmt.Fprintln(p.w(), "  ❌ 环境未配置，请运行安装脚本")
	}

	if s.Verdict != suite.Ready {
		p.remediation()
	}
}

func (p *Printer) remediation() {
	fmt.Fprintln(p.w())
	fmt.Fprintln(p.w(), "💡 建议修复步骤:")
	fmt.Fprintln(p.w(), "1. 运行 !bash colab/quick_setup.sh")
	fmt.Fprintln(p.w(), "2. 或在 Colab 中逐个执行 setup_colab.ipynb 的单元格")
	fmt.Fprintln(p.w(), "3. 检查网络连接和磁盘空间")
}
