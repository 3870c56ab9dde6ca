//go:build windows

package runner

import (
	"fmt"
	"os/exec"
	"syscall"

	winapi "golang.org/x/sys/windows"
)

func newSysProcAttrForGroup() *syscall.SysProcAttr {
	// New process group so taskkill /T terminates the entire tree
	return &syscall.SysProcAttr{CreationFlags: winapi.CREATE_NEW_PROCESS_GROUP}
}

func terminate(pid int) error {
	if pid <= 0 {
		return nil
	}
	return exec.Command("taskkill", "/PID", fmt.Sprint(pid), "/T", "/F").Run()
}
