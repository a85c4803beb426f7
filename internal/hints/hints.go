// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-code2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow pages.
func ForTimeout() string {
	return format("for long files or slow pages, use --timeout or RENDER_TIMEOUT")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-code2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// SizeExamples are page sizes offered by ForInvalidSize. Each one is
// accepted by the size validator.
var SizeExamples = []string{"A4", "letter portrait", "210mm 297mm"}

// ForInvalidSize lists accepted page size forms.
func ForInvalidSize() string {
	quoted := make([]string, len(SizeExamples))
	for i, size := range SizeExamples {
		quoted[i] = `"` + size + `"`
	}
	last := len(quoted) - 1
	return format("use a CSS page size such as " + strings.Join(quoted[:last], ", ") + " or " + quoted[last])
}

// ForFetch returns hints for URLs that could not be fetched.
// GitHub and Gist pages are already rewritten to their raw form.
func ForFetch(target string) string {
	if strings.Contains(target, "github.com") {
		return format("check the repository or gist is public")
	}
	return format("check the URL answers 200 without authentication")
}

// ForOutputExists explains why stdin input cannot prompt.
func ForOutputExists() string {
	return format("inputs were read from stdin; pass --force to overwrite")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
