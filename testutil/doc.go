// Package testutil provides common testing utilities for parseurl packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Writing fixture files into a per-test directory (WriteFile)
//   - Common string handling in assertions (Contains, Lines)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestParseCommand(t *testing.T) {
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand("parse", "/foo?bar=1")
//	    })
//
//	    if !testutil.Contains(output, "/foo") {
//	        t.Error("expected pathname in output")
//	    }
//	}
package testutil
