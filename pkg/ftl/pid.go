package ftl

import (
	"os"
	"strconv"
	"strings"
)

// NoPID is the sentinel returned when no valid PID can be determined.
const NoPID = -1

const pidFileKey = "PIDFILE="

// PIDFilePath resolves the daemon's PID file location. When the daemon
// config file exists and is non-empty, the value of its first PIDFILE=
// line wins; in every other case (missing file, empty file, no entry,
// empty value) the configured default is returned.
func (c *Client) PIDFilePath() string {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil || len(data) == 0 {
		return c.DefaultPIDFile
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, pidFileKey) {
			continue
		}
		if path := strings.TrimSpace(line[len(pidFileKey):]); path != "" {
			return path
		}
		break
	}
	return c.DefaultPIDFile
}

// ReadPID reads and validates the PID stored in the file at path. The
// whole trimmed content must be digits; anything else (missing file,
// empty file, stray characters) yields NoPID. PID file content is
// attacker-influenced on shared systems, so it is never passed on
// unvalidated to anything that could signal a process.
func ReadPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoPID
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return NoPID
	}
	for _, r := range content {
		if r < '0' || r > '9' {
			return NoPID
		}
	}

	pid, err := strconv.Atoi(content)
	if err != nil {
		// Digits but out of int range.
		return NoPID
	}
	return pid
}

// PID resolves the daemon's PID file and reads the PID from it,
// returning NoPID when either step comes up empty.
func (c *Client) PID() int {
	return ReadPID(c.PIDFilePath())
}
