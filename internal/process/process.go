// Package process terminates the headless Chrome tree left behind by a render.
package process

// KillTree kills the process with the given pid and every child it spawned.
// Non-positive pids are ignored: on unix they address the caller's own group.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	killTree(pid)
}
