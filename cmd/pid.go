package cmd

import (
	"fmt"
	"os"

	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/process"

	"github.com/spf13/cobra"
)

var pidCheck bool

var pidCmd = &cobra.Command{
	Use:   "pid",
	Short: "Print the daemon's PID",
	Long: `Print the daemon's PID as recorded in its PID file.

The PID file location comes from the PIDFILE entry in the daemon's config
file, falling back to the configured default. Prints -1 when the PID file
is missing, empty, or holds anything but digits.

With --check the exit code also reflects liveness: 0 when the daemon is
running, 1 otherwise.

Example:
  ftlconf pid
  ftlconf pid --check && echo "daemon is up"`,
	Args: cobra.NoArgs,
	Run:  runPID,
}

func init() {
	pidCmd.Flags().BoolVar(&pidCheck, "check", false, "exit non-zero unless the daemon is running")
}

func runPID(cmd *cobra.Command, args []string) {
	client := newClient()

	pid := client.PID()
	fmt.Println(pid)

	if pidCheck && (pid == ftl.NoPID || !process.Alive(pid)) {
		os.Exit(1)
	}
}

var pidFileCmd = &cobra.Command{
	Use:   "pidfile",
	Short: "Print the resolved PID file path",
	Long: `Print the path of the daemon's PID file after resolution.

Example:
  ftlconf pidfile`,
	Args: cobra.NoArgs,
	Run:  runPIDFile,
}

func runPIDFile(cmd *cobra.Command, args []string) {
	client := newClient()
	fmt.Println(client.PIDFilePath())
}
