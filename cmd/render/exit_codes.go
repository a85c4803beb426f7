package main

// Exit codes for the render command.
// Any failure, including a declined prompt or an interrupt, exits 1.
const (
	ExitSuccess = 0 // Rendered, or version/help shown
	ExitFailure = 1 // Error, cancellation or interrupt
	ExitUsage   = 2 // Invalid flags
)

// exitCodeFor returns the exit code for the outcome of run.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
