package cmd

import (
	"fmt"

	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/process"
	"github.com/braunmar/ftlconf/pkg/ui"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Long: `Show whether the daemon is running, with its PID and PID file.

Example:
  ftlconf status`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	client := newClient()

	pidFile := client.PIDFilePath()
	pid := ftl.ReadPID(pidFile)

	ui.PrintStatusLine("PID file", pidFile)

	if pid == ftl.NoPID {
		ui.Warning("No valid PID recorded")
		return
	}

	ui.PrintStatusLine("PID", fmt.Sprintf("%d", pid))
	if process.Alive(pid) {
		ui.Success("Daemon is running")
	} else {
		ui.Warning("Daemon is not running (stale PID file?)")
	}
}
