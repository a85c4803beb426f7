//go:build !windows

package process

import "syscall"

// killTree signals the whole process group; Chrome helpers share the
// launcher's group.
func killTree(pid int) {
	// launcher.Kill() runs afterwards, errors here are not fatal
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
