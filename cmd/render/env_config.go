package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-code2pdf/internal/config"
)

// envPrefix marks the variables read by the command.
const envPrefix = "RENDER_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring a YAML file.
type envConfig struct {
	ConfigPath string        // RENDER_CONFIG: config file name or path
	Size       string        // RENDER_SIZE: CSS page size
	Timeout    time.Duration // RENDER_TIMEOUT: print timeout
}

// knownEnvVars lists valid RENDER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RENDER_CONFIG":  true,
	"RENDER_SIZE":    true,
	"RENDER_TIMEOUT": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive RENDER_TIMEOUT is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RENDER_CONFIG"),
		Size:       os.Getenv("RENDER_SIZE"),
	}

	if timeout := os.Getenv("RENDER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized RENDER_* variable.
// Helps catch typos like RENDER_TIMOUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over the config file.
// Precedence: flags > env vars > config file > defaults
// (flags are applied later by buildRenderOptions and resolveSize).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Size != "" {
		cfg.Page.Size = env.Size
	}
}
