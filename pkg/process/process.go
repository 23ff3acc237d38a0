//go:build !windows

package process

import "syscall"

// Alive checks whether a process with the given PID is running by
// sending signal 0 (a no-op that still returns ESRCH if the process
// doesn't exist). Non-positive PIDs, including the -1 "no PID known"
// sentinel, are never probed: on Unix a negative argument to kill(2)
// targets a whole process group.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || err == syscall.EPERM
}
