package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/apdec/internal/config"
	"github.com/idelchi/apdec/internal/keystream"
)

func valid() config.Config {
	return config.Config{
		Parallel:   2,
		Variant:    keystream.DefaultVariant,
		BufferSize: "4KiB",
		Files:      []string{"MUSIC.AUD"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	patterns := filepath.Join(t.TempDir(), "patterns.jsonc")
	if err := os.WriteFile(patterns, []byte(`["*.AUD"]`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "dry alone", mutate: func(c *config.Config) { c.Dry = true }},
		{name: "delete alone", mutate: func(c *config.Config) { c.Delete = true }},
		{name: "pattern file", mutate: func(c *config.Config) { c.IncludeFrom = patterns }},
		{name: "upper-case variant", mutate: func(c *config.Config) { c.Variant = "LEGACY" }},
		{name: "plain byte count", mutate: func(c *config.Config) { c.BufferSize = "1" }},
		{name: "dry and delete", mutate: func(c *config.Config) { c.Dry, c.Delete = true, true }, wantErr: "exclusive"},
		{name: "no workers", mutate: func(c *config.Config) { c.Parallel = 0 }, wantErr: "min"},
		{name: "unknown variant", mutate: func(c *config.Config) { c.Variant = "modern" }, wantErr: "variant"},
		{name: "empty variant", mutate: func(c *config.Config) { c.Variant = "" }, wantErr: "required"},
		{name: "bad size", mutate: func(c *config.Config) { c.BufferSize = "lots" }, wantErr: "bytesize"},
		{name: "zero size", mutate: func(c *config.Config) { c.BufferSize = "0" }, wantErr: "bytesize"},
		{name: "huge size", mutate: func(c *config.Config) { c.BufferSize = "2GiB" }, wantErr: "bytesize"},
		{
			name:    "missing pattern file",
			mutate:  func(c *config.Config) { c.ExcludeFrom = filepath.Join(t.TempDir(), "absent.jsonc") },
			wantErr: "file",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()

			switch {
			case tc.wantErr == "" && err != nil:
				t.Fatalf("Validate() error: %v", err)
			case tc.wantErr != "" && err == nil:
				t.Fatalf("Validate() succeeded, want error containing %q", tc.wantErr)
			case tc.wantErr != "" && !strings.Contains(err.Error(), tc.wantErr):
				t.Fatalf("Validate() error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateUsage(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Files = nil

	if err := cfg.Validate(); !errors.Is(err, config.ErrUsage) {
		t.Errorf("Validate() error = %v, want %v", err, config.ErrUsage)
	}
}

func TestBufferBytes(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"4KiB":   4096,
		"128KiB": 0x20000,
		"1":      1,
		"1 kB":   1000,
	}

	for in, want := range tests {
		cfg := valid()
		cfg.BufferSize = in

		got, err := cfg.BufferBytes()
		if err != nil {
			t.Fatalf("BufferBytes(%q) error: %v", in, err)
		}

		if got != want {
			t.Errorf("BufferBytes(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	table, err := valid().Table()
	if err != nil {
		t.Fatal(err)
	}

	if table.Len() != 1024 {
		t.Errorf("Table().Len() = %d", table.Len())
	}
}
