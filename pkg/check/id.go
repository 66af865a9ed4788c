package check

// ID is a stable tag identifying a single check. Tags are independent of
// the display names, so renaming a check in the report cannot silently
// change which checks count as critical.
type ID string

const (
	RuntimeVersion ID = "runtime-version"
	Platform       ID = "platform"
	Architecture   ID = "architecture"
	GPU            ID = "gpu"
	DiskSpace      ID = "disk-space"

	ToolNode ID = "tool-node"
	ToolNPM  ID = "tool-npm"
	ToolPNPM ID = "tool-pnpm"
	ToolGit  ID = "tool-git"

	ProjectDir   ID = "project-dir"
	Manifest     ID = "manifest"
	Dependencies ID = "dependencies"
	BuildOutput  ID = "build-output"
	CLIVersion   ID = "cli-version"
	CLIHelp      ID = "cli-help"

	NetInternet ID = "net-internet"
	NetGitHub   ID = "net-github"
	NetRegistry ID = "net-registry"
)

var displayNames = map[ID]string{
	RuntimeVersion: "Go 版本",
	Platform:       "操作系统",
	Architecture:   "系统架构",
	GPU:            "GPU 支持",
	DiskSpace:      "磁盘空间",
	ToolNode:       "Node.js 安装",
	ToolNPM:        "npm 安装",
	ToolPNPM:       "pnpm 安装",
	ToolGit:        "Git 安装",
	ProjectDir:     "项目目录",
	Manifest:       "package.json",
	Dependencies:   "依赖安装",
	BuildOutput:    "构建输出",
	CLIVersion:     "CLI 工具",
	CLIHelp:        "CLI 帮助",
	NetInternet:    "互联网连接",
	NetGitHub:      "GitHub 连接",
	NetRegistry:    "npm Registry",
}

// DisplayName returns the user-facing name for id. Unknown IDs are
// returned as-is so a forgotten table entry is visible, not hidden.
func DisplayName(id ID) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return string(id)
}

// critical lists the checks that must pass for the environment to be
// considered ready. Everything else is advisory.
var critical = map[ID]bool{
	ToolNode:     true,
	ToolPNPM:     true,
	ProjectDir:   true,
	Dependencies: true,
	BuildOutput:  true,
}

// IsCritical reports whether id is part of the critical set.
func IsCritical(id ID) bool {
	return critical[id]
}

// CriticalIDs returns the critical checks in display order.
func CriticalIDs() []ID {
	return []ID{ToolNode, ToolPNPM, ProjectDir, Dependencies, BuildOutput}
}

// All returns every known check ID in display order. Checks that were
// skipped (for example everything after a missing project directory)
// simply have no Result; the report only shows what actually ran.
func All() []ID {
	return []ID{
		RuntimeVersion, Platform, Architecture, GPU, DiskSpace,
		ToolNode, ToolNPM, ToolPNPM, ToolGit,
		ProjectDir, Manifest, Dependencies, BuildOutput, CLIVersion, CLIHelp,
		NetInternet, NetGitHub, NetRegistry,
	}
}
