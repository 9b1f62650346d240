package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/apdec/internal/batch"
	"github.com/idelchi/apdec/internal/commands"
	"github.com/idelchi/apdec/internal/config"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := commands.NewRootCommand(&config.Config{}, "test")

	var out, errOut bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestNoArgumentsPrintsUsage(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t)
	if !errors.Is(err, config.ErrUsage) {
		t.Fatalf("Execute() error = %v, want %v", err, config.ErrUsage)
	}

	if !strings.Contains(stderr, "Usage:") || !strings.Contains(stderr, "FILE1.AUD") {
		t.Errorf("usage not printed to stderr:\n%s", stderr)
	}
}

func TestEncodeThenDecode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := []byte("ID3 fake audio frames")

	if err := os.WriteFile(filepath.Join(dir, "theme.mp3"), payload, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "encode", "--quiet", "--delete", dir); err != nil {
		t.Fatalf("encode: %v", err)
	}

	encoded := filepath.Join(dir, "theme.AUD")
	if _, err := os.Stat(encoded); err != nil {
		t.Fatalf("encoded file missing: %v", err)
	}

	stdout, _, err := execute(t, "--parallel", "1", "--buffer-size", "16", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !strings.Contains(stdout, "theme.mp3") {
		t.Errorf("per-file report missing from the command's stdout: %q", stdout)
	}

	got, err := os.ReadFile(filepath.Join(dir, "theme.mp3"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, payload) {
		t.Errorf("decoded = %q, want %q", got, payload)
	}
}

func TestDecodeFailureExitsWithError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "BROKEN.AUD")

	if err := os.WriteFile(bad, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := execute(t, bad)
	if !errors.Is(err, batch.ErrJobsFailed) {
		t.Fatalf("Execute() error = %v, want %v", err, batch.ErrJobsFailed)
	}

	if !strings.Contains(stderr, "BROKEN.AUD") || !strings.Contains(stderr, "adler32 mismatch") {
		t.Errorf("failure not reported on the command's stderr:\n%s", stderr)
	}

	if _, err := os.Stat(filepath.Join(dir, "BROKEN.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output written for a failed file: %v", err)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"--variant", "unknown", "a.AUD"},
		{"--buffer-size", "0", "a.AUD"},
		{"--parallel", "0", "a.AUD"},
		{"--dry", "--delete", "a.AUD"},
	}

	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("Execute(%v) succeeded, want validation error", args)
		}
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "--show", "--variant", "LEGACY", "x.pnz")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"variant:             LEGACY", "files:               [x.pnz]"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("--show output missing %q:\n%s", want, stdout)
		}
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "variants")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout, "legacy\t1024-byte key (default)") {
		t.Errorf("variants output = %q", stdout)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("APDEC_VARIANT", "LEGACY")
	t.Setenv("APDEC_BUFFER_SIZE", "16KiB")

	stdout, _, err := execute(t, "--show", "x.AUD")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"variant:             LEGACY", "buffer-size:         16KiB"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("--show output missing %q:\n%s", want, stdout)
		}
	}

	// Flags given on the command line win over the environment.
	stdout, _, err = execute(t, "--show", "--buffer-size", "1KiB", "x.AUD")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout, "buffer-size:         1KiB") {
		t.Errorf("flag did not override environment:\n%s", stdout)
	}
}

func TestEnvironmentValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		tag  string
	}{
		{name: "unknown variant", env: map[string]string{"APDEC_VARIANT": "bogus"}, tag: "variant"},
		{name: "dry with delete", env: map[string]string{"APDEC_DRY": "true", "APDEC_DELETE": "true"}, tag: "exclusive"},
		{name: "zero workers", env: map[string]string{"APDEC_PARALLEL": "0"}, tag: "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, _, err := execute(t, "x.AUD")

			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("Execute() error = %v, want validation errors", err)
			}

			if got := validationErrs[0].Tag(); got != tt.tag {
				t.Errorf("failed tag = %q, want %q", got, tt.tag)
			}
		})
	}
}
