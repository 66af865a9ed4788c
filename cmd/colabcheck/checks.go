package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeonsage/colabcheck/pkg/check"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the checks in the checklist",
	Long:  "List every check colabcheck runs, in order, marking the critical ones. Nothing is probed.",
	Args:  cobra.NoArgs,
	RunE:  runChecks,
}

func init() {
	rootCmd.AddCommand(checksCmd)
}

func runChecks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, id := range check.All() {
		marker := " "
		if check.IsCritical(id) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-16s %s\n", marker, id, check.DisplayName(id))
	}
	fmt.Fprintln(out, "\n* 关键检查")
	return nil
}
