package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeonsage/colabcheck/pkg/netcheck"
	"github.com/aeonsage/colabcheck/pkg/probe"
	"github.com/aeonsage/colabcheck/pkg/projectcheck"
	"github.com/aeonsage/colabcheck/pkg/report"
	"github.com/aeonsage/colabcheck/pkg/suite"
	"github.com/aeonsage/colabcheck/pkg/sysinfo"
	"github.com/aeonsage/colabcheck/pkg/toolcheck"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrNotReady is returned when the verdict is anything but READY. The
// report already explains what to fix, so the error itself stays quiet
// and only drives the exit code.
var ErrNotReady = errors.New("environment not ready")

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colabcheck",
	Short: "Verify an AeonSage Colab environment",
	Long: `Colabcheck runs the AeonSage environment checklist: host facts,
the Node.js toolchain, the project installation and network
reachability. It prints a live report and exits 0 only when every
critical check passes.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print result details and debug logs")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := setupLogging(verbose); err != nil {
		return err
	}

	printer := &report.Printer{Out: cmd.OutOrStdout(), Verbose: verbose}
	printer.Banner()

	summary := buildSuite(printer).Run(cmd.Context())
	printer.Summary(summary)

	slog.Info("run finished",
		"verdict", summary.Verdict, "passed", summary.Passed, "failed", summary.Failed)

	if summary.Verdict != suite.Ready {
		return ErrNotReady
	}
	return nil
}

// buildSuite is a package variable so tests can swap in canned groups.
var buildSuite = func(sink suite.Sink) *suite.Suite {
	runner := &probe.ExecRunner{}
	return &suite.Suite{
		System:  &sysinfo.Checks{Env: &sysinfo.RealEnvGetter{}, Probe: runner, Info: &sysinfo.RealHostInfo{}},
		Tools:   &toolcheck.Checks{Probe: runner},
		Project: &projectcheck.Checks{FS: &projectcheck.RealFileSystem{}, Probe: runner},
		Network: &netcheck.Checks{Probe: runner},
		Sink:    sink,
	}
}
