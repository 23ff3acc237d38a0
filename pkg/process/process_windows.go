//go:build windows

package process

import (
	"fmt"
	"os/exec"
)

// Alive reports whether a process with the given PID is running.
// os.FindProcess always succeeds on Windows, so tasklist is used to
// verify the PID actually exists.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	out, err := exec.Command("tasklist", "/FI", fmt.Sprintf("PID eq %d", pid), "/NH").Output()
	if err != nil {
		return false
	}
	return len(out) > 0 && string(out) != "INFO: No tasks are running which match the specified criteria.\r\n"
}
