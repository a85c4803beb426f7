// Package config loads optional YAML defaults for the render command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-code2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// Field length limits.
const (
	MaxSizeLength     = 64   // "JIS-B5 landscape", "210mm 297mm"
	MaxLengthLength   = 32   // "10pt", ".5in .25in .5in .5in"
	MaxPatternLength  = 1024 // include/exclude pattern
	MaxPatternCount   = 256
	MaxTimeoutLength  = 16 // "90s", "2m30s"
	configDirName     = "go-code2pdf"
	maxMarginSegments = 4
)

// Config holds defaults that flags and environment variables may override.
type Config struct {
	Page    PageConfig    `yaml:"page"`
	Render  RenderConfig  `yaml:"render"`
	Filters FiltersConfig `yaml:"filters"`
}

// PageConfig defines the CSS page box.
type PageConfig struct {
	Size     string `yaml:"size"`     // CSS @page size, e.g. "a4 landscape"
	FontSize string `yaml:"fontSize"` // CSS length (default: 10pt)
	Margin   string `yaml:"margin"`   // CSS margin shorthand (default: .5in)
}

// RenderConfig defines rendering switches.
// Pointers distinguish "not set" from an explicit false.
type RenderConfig struct {
	Color    *bool  `yaml:"color"`
	ShowPath *bool  `yaml:"showPath"`
	Timeout  string `yaml:"timeout"` // Go duration, e.g. "60s"
}

// FiltersConfig lists default include/exclude patterns.
type FiltersConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Validate checks field lengths and parses the timeout.
func (c *Config) Validate() error {
	if err := validateFieldLength("page.size", c.Page.Size, MaxSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.fontSize", c.Page.FontSize, MaxLengthLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.margin", c.Page.Margin, MaxLengthLength); err != nil {
		return err
	}
	if n := len(strings.Fields(c.Page.Margin)); n > maxMarginSegments {
		return fmt.Errorf("page.margin: %d values, max %d", n, maxMarginSegments)
	}

	if err := validateFieldLength("render.timeout", c.Render.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	if err := validatePatterns("filters.include", c.Filters.Include); err != nil {
		return err
	}
	return validatePatterns("filters.exclude", c.Filters.Exclude)
}

// Timeout parses render.timeout. Zero means "not set".
func (c *Config) Timeout() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidTimeout, c.Render.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidTimeout, d)
	}
	return d, nil
}

func validatePatterns(field string, patterns []string) error {
	if len(patterns) > MaxPatternCount {
		return fmt.Errorf("%w: %s (%d patterns, max %d)", ErrFieldTooLong, field, len(patterns), MaxPatternCount)
	}
	for i, p := range patterns {
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", field, i), p, MaxPatternLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: every value falls through
// to the command's built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory then in the user
// config directory, with .yaml then .yml extensions.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
