package cmd

import (
	"fmt"
	"os"

	"github.com/braunmar/ftlconf/pkg/doctor"

	"github.com/spf13/cobra"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment health checks",
	Long: `Run health checks on the daemon environment:
- daemon binary resolvable and executable
- daemon config file readable
- PID file resolution and daemon liveness

Exit code: 0 healthy, 1 warnings, 2 errors.

Example:
  ftlconf doctor
  ftlconf doctor --json`,
	Args: cobra.NoArgs,
	Run:  runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output report as JSON")
}

func runDoctor(cmd *cobra.Command, args []string) {
	report := doctor.Run(loadConfig())

	if doctorJSON {
		fmt.Println(report.ToJSON())
	} else {
		report.Print()
	}

	os.Exit(report.ExitCode())
}
