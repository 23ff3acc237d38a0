package doctor

import (
	"encoding/json"
	"fmt"

	"github.com/braunmar/ftlconf/pkg/ui"
)

// Print outputs the report in human-readable format
func (r *Report) Print() {
	ui.PrintHeader("🏥 ftlconf doctor - Health Check Report")

	r.printBinary()
	r.printDaemonConfig()
	r.printPID()
	r.printSummary()
	ui.NewLine()
}

// ToJSON outputs the report in JSON format
func (r *Report) ToJSON() string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}

// ExitCode returns the appropriate exit code based on report status
func (r *Report) ExitCode() int {
	if r.Summary.ErrorsCount > 0 {
		return 2
	}
	if r.Summary.WarningsCount > 0 {
		return 1
	}
	return 0
}

func (r *Report) printBinary() {
	ui.Section("DAEMON BINARY")

	if !r.Binary.Found {
		ui.Error(r.Binary.Error)
		return
	}
	ui.Success(fmt.Sprintf("Daemon binary found (%s)", r.Binary.Resolved))
}

func (r *Report) printDaemonConfig() {
	ui.Section("DAEMON CONFIG")

	if !r.DaemonConfig.Exists {
		ui.Info(fmt.Sprintf("No config file at %s, using defaults", r.DaemonConfig.Path))
		return
	}
	if !r.DaemonConfig.Readable {
		ui.Error(r.DaemonConfig.Error)
		return
	}

	ui.Success(fmt.Sprintf("Config file readable (%s)", r.DaemonConfig.Path))
	if r.DaemonConfig.HasPIDFileEntry {
		ui.Info("PIDFILE entry present")
	}
}

func (r *Report) printPID() {
	ui.Section("DAEMON PROCESS")

	ui.PrintStatusLine("PID file", r.PID.PIDFile)

	if !r.PID.Valid {
		ui.Warning("No valid PID recorded (file missing, empty, or malformed)")
		return
	}

	ui.PrintStatusLine("PID", fmt.Sprintf("%d", r.PID.PID))
	if r.PID.Running {
		ui.Success("Daemon is running")
	} else {
		ui.Warning("PID recorded but process is not running (stale PID file?)")
	}
}

func (r *Report) printSummary() {
	ui.Section("SUMMARY")

	statusEmoji := "✅"
	if r.Summary.HealthStatus == "POOR" {
		statusEmoji = "❌"
	} else if r.Summary.HealthStatus == "FAIR" {
		statusEmoji = "⚠️"
	}

	fmt.Printf("Overall health: %s %s", r.Summary.HealthStatus, statusEmoji)
	if issues := r.Summary.ErrorsCount + r.Summary.WarningsCount; issues > 0 {
		fmt.Printf(" (%d errors, %d warnings)", r.Summary.ErrorsCount, r.Summary.WarningsCount)
	}
	fmt.Println()
}
