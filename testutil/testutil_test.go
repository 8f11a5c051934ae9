package testutil

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})

		if !Contains(output, "test output") {
			t.Errorf("expected output to contain 'test output', got: %s", output)
		}
	})

	t.Run("captures multiple lines", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("line 1")
			fmt.Println("line 2")
			return nil
		})

		lines := Lines(output)
		if len(lines) != 2 || lines[0] != "line 1" || lines[1] != "line 2" {
			t.Errorf("unexpected lines: %q", lines)
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		orig := os.Stdout
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return errors.New("test error")
		})

		if !Contains(output, "output before error") {
			t.Error("expected output to contain 'output before error'")
		}
		if os.Stdout != orig {
			t.Error("stdout was not restored")
		}
	})

	t.Run("restores stdout on panic", func(t *testing.T) {
		orig := os.Stdout
		func() {
			defer func() { _ = recover() }()
			CaptureOutput(t, func() error { panic("boom") })
		}()
		if os.Stdout != orig {
			t.Error("stdout was not restored")
		}
	})

	t.Run("handles empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error { return nil })
		if output != "" {
			t.Errorf("expected empty output, got: %q", output)
		}
	})
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "config.yaml", "addr: :9090\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "addr: :9090\n" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n\n  b  \n", 2},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); len(got) != tt.want {
			t.Errorf("Lines(%q) = %q, want %d lines", tt.in, got, tt.want)
		}
	}
}
