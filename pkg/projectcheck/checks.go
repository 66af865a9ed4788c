package projectcheck

import (
	"context"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
)

// DefaultDir is the project checkout expected under the current
// working directory.
const DefaultDir = "aeonsage"

// manifestReadLimit caps how much of package.json is read for the
// name/version details.
const manifestReadLimit = 1 << 20

// Checks verifies the project checkout: directory, manifest, installed
// dependencies, build output and the built CLI.
type Checks struct {
	Dir   string // project directory, DefaultDir when empty
	FS    FileSystem
	Probe probe.Runner
}

// Run records the project results. A missing project directory ends the
// group immediately: everything else would be noise without it. The
// manifest gate works the same way for the install checks, and the
// build output gates the CLI probes. Skipped checks record nothing.
//
// Run changes into the project directory for the duration of the group
// and always restores the previous working directory before returning.
func (c *Checks) Run(ctx context.Context, rec check.Recorder) {
	if c.FS == nil {
		c.FS = &RealFileSystem{}
	}
	if c.Probe == nil {
		c.Probe = &probe.ExecRunner{}
	}
	dir := c.Dir
	if dir == "" {
		dir = DefaultDir
	}

	info, err := c.FS.Stat(dir)
	if err != nil || !info.IsDir() {
		rec.Record(check.Fail(check.ProjectDir, "未找到", err))
		return
	}
	rec.Record(check.Pass(check.ProjectDir, dir))

	restore, err := chdir(dir)
	if err != nil {
		slog.Warn("cannot enter project directory", "dir", dir, "err", err)
		return
	}
	defer restore()

	if !c.manifest(rec) {
		return
	}
	c.dependencies(rec)
	if c.buildOutput(rec) {
		c.cli(ctx, rec)
	}
}

// chdir enters dir and returns a function restoring the previous
// working directory.
func chdir(dir string) (func(), error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			slog.Warn("restoring working directory failed", "dir", prev, "err", err)
		}
	}, nil
}

// manifest records the package.json result and reports whether the
// file exists. The name/version details are best-effort.
func (c *Checks) manifest(rec check.Recorder) bool {
	if _, err := c.FS.Stat("package.json"); err != nil {
		rec.Record(check.Fail(check.Manifest, "缺失", err))
		return false
	}

	result := check.Pass(check.Manifest, "存在")
	if raw, err := c.FS.ReadFile("package.json", manifestReadLimit); err == nil {
		if name := gjson.GetBytes(raw, "name"); name.Exists() {
			result.AddDetailf("name: %s", name.String())
		}
		if version := gjson.GetBytes(raw, "version"); version.Exists() {
			result.AddDetailf("version: %s", version.String())
		}
	}
	rec.Record(result)
	return true
}

func (c *Checks) dependencies(rec check.Recorder) {
	if _, err := c.FS.Stat("node_modules"); err != nil {
		rec.Record(check.Fail(check.Dependencies, "需要运行 pnpm install", err))
		return
	}
	rec.Record(check.Pass(check.Dependencies, "已完成"))
}

// buildOutput records the dist result and reports whether the build
// output exists.
func (c *Checks) buildOutput(rec check.Recorder) bool {
	if _, err := c.FS.Stat("dist"); err != nil {
		rec.Record(check.Fail(check.BuildOutput, "需要运行 pnpm build", err))
		return false
	}
	rec.Record(check.Pass(check.BuildOutput, "已构建"))
	return true
}

// cli probes the built command line tool through pnpm. The version and
// help probes are independent: a tool that prints a version but has a
// broken help screen shows up as exactly that.
func (c *Checks) cli(ctx context.Context, rec check.Recorder) {
	version := c.Probe.Run(ctx, "pnpm", "aeonsage", "--version")
	if version.Succeeded {
		rec.Record(check.Pass(check.CLIVersion, version.Output))
	} else {
		rec.Record(check.Fail(check.CLIVersion, "无法执行", nil))
	}

	help := c.Probe.Run(ctx, "pnpm", "aeonsage", "--help")
	if help.Succeeded {
		rec.Record(check.Pass(check.CLIHelp, "可用"))
	} else {
		rec.Record(check.Fail(check.CLIHelp, "不可用", nil))
	}
}
