//go:build windows

package shell

import (
	"os/exec"
	"syscall"
)

// configureProcess keeps the PowerShell console window hidden.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
