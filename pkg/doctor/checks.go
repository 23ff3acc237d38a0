// Package doctor runs environment health checks: can the daemon binary
// be found, is its config file readable, and does its PID file point at
// a live process.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/braunmar/ftlconf/pkg/config"
	"github.com/braunmar/ftlconf/pkg/ftl"
	"github.com/braunmar/ftlconf/pkg/process"
)

// Run executes all health checks and returns the combined report.
func Run(cfg *config.Config) *Report {
	client := ftl.NewClient(cfg.FTLBinary, cfg.FTLConfigFile, cfg.PIDFile)

	r := &Report{
		Binary:       checkBinary(cfg.FTLBinary),
		DaemonConfig: checkDaemonConfig(cfg.FTLConfigFile),
		PID:          checkPID(client),
	}
	r.summarize()
	return r
}

// checkBinary resolves the daemon executable, via PATH for bare names.
func checkBinary(binary string) BinaryHealth {
	h := BinaryHealth{Path: binary}

	if strings.ContainsRune(binary, filepath.Separator) {
		info, err := os.Stat(binary)
		if err != nil {
			h.Error = fmt.Sprintf("daemon binary not found: %v", err)
			return h
		}
		if info.IsDir() || info.Mode()&0111 == 0 {
			h.Error = fmt.Sprintf("daemon binary %s is not executable", binary)
			return h
		}
		h.Found = true
		h.Resolved = binary
		return h
	}

	resolved, err := exec.LookPath(binary)
	if err != nil {
		h.Error = fmt.Sprintf("daemon binary not in PATH: %v", err)
		return h
	}
	h.Found = true
	h.Resolved = resolved
	return h
}

// checkDaemonConfig inspects the daemon's own config file.
func checkDaemonConfig(path string) DaemonConfigHealth {
	h := DaemonConfigHealth{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Absent config is fine, the defaults cover it.
			return h
		}
		h.Exists = true
		h.Error = fmt.Sprintf("daemon config not readable: %v", err)
		return h
	}

	h.Exists = true
	h.Readable = true
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "PIDFILE=") {
			h.HasPIDFileEntry = true
			break
		}
	}
	return h
}

// checkPID resolves the PID file and probes the recorded process.
func checkPID(client *ftl.Client) PIDHealth {
	h := PIDHealth{PIDFile: client.PIDFilePath()}
	h.PID = ftl.ReadPID(h.PIDFile)
	h.Valid = h.PID != ftl.NoPID
	if h.Valid {
		h.Running = process.Alive(h.PID)
	}
	return h
}

// summarize tallies warnings and errors into the overall health status.
func (r *Report) summarize() {
	if !r.Binary.Found {
		r.Summary.ErrorsCount++
	}
	if r.DaemonConfig.Exists && !r.DaemonConfig.Readable {
		r.Summary.ErrorsCount++
	}
	if !r.PID.Valid {
		r.Summary.WarningsCount++
	} else if !r.PID.Running {
		r.Summary.WarningsCount++
	}

	switch {
	case r.Summary.ErrorsCount > 0:
		r.Summary.HealthStatus = "POOR"
	case r.Summary.WarningsCount > 0:
		r.Summary.HealthStatus = "FAIR"
	default:
		r.Summary.HealthStatus = "GOOD"
	}
}
