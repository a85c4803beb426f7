package yamlutil_test

// Notes:
// - MaxInputSize is a package variable; tests that lower it are not parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-code2pdf/internal/yamlutil"
)

type pageSection struct {
	Size     string `yaml:"size"`
	FontSize string `yaml:"fontSize"`
}

type testConfig struct {
	Page    pageSection `yaml:"page"`
	Include []string    `yaml:"include"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dest    any
		wantErr error
		partial string
	}{
		{
			name: "valid document",
			data: "page:\n  size: a4 landscape\n  fontSize: 9pt\ninclude: ['*.go']\n",
			dest: &testConfig{},
		},
		{
			name:    "empty data",
			data:    "",
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    "page: {}",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "unknown field",
			data:    "page:\n  colour: red\n",
			dest:    &testConfig{},
			partial: "yamlutil:",
		},
		{
			name:    "syntax error",
			data:    "page: [unclosed",
			dest:    &testConfig{},
			partial: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict([]byte(tt.data), tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.partial != "":
				if err == nil || !strings.Contains(err.Error(), tt.partial) {
					t.Errorf("UnmarshalStrict() error = %v, want containing %q", err, tt.partial)
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Page.Size != "a4 landscape" || cfg.Page.FontSize != "9pt" {
					t.Errorf("Page = %+v", cfg.Page)
				}
				if len(cfg.Include) != 1 || cfg.Include[0] != "*.go" {
					t.Errorf("Include = %v, want [*.go]", cfg.Include)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Reader input and size limit
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	var cfg testConfig
	if err := yamlutil.DecodeStrict(strings.NewReader("page: {size: letter}"), &cfg); err != nil {
		t.Fatalf("DecodeStrict() error = %v", err)
	}
	if cfg.Page.Size != "letter" {
		t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "letter")
	}
}

func TestDecodeStrict_TooLarge(t *testing.T) {
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })

	var cfg testConfig
	err := yamlutil.DecodeStrict(strings.NewReader("page: {size: 'a very long page size value'}"), &cfg)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("DecodeStrict() error = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}
