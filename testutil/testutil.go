package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout while fn runs and returns what was written.
// The original stdout is restored even when fn fails or panics. An error from fn
// is logged, not fatal, so callers can assert on partial output.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	origStdout := os.Stdout
	os.Stdout = w

	// Buffered so the reader never blocks after a failed test.
	outCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outCh <- buf.String()
	}()

	var fnErr error
	func() {
		defer func() {
			os.Stdout = origStdout
			if err := w.Close(); err != nil {
				t.Logf("Failed to close pipe writer: %v", err)
			}
		}()
		fnErr = fn()
	}()

	output := <-outCh
	_ = r.Close()

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path. The directory is removed when the test completes.
//
// Example:
//
//	path := testutil.WriteFile(t, "config.yaml", "addr: :9090\n")
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Contains checks if a string contains a substring.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// Lines splits output into non-empty trimmed lines.
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
