//go:build !windows

package runner

import "syscall"

func newSysProcAttrForGroup() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// terminate signals the whole process group of pid.
func terminate(pid int) error {
	if pid <= 0 {
		return nil
	}
	return syscall.Kill(-pid, syscall.SIGTERM)
}
