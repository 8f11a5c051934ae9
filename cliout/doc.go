// Package cliout provides output formatting for the parseurl command line.
//
// # Output Formats
//
// Three formats are supported:
//   - default: human-readable text with colors and Unicode symbols
//   - json: indented JSON for automation and scripting
//   - yaml: YAML documents
//
// Commands hand Print both the data and a formatter for the default format:
//
//	if err := cliout.SetFormat("yaml"); err != nil {
//	    return err
//	}
//	return cliout.Print(record, func() {
//	    cliout.Label("Pathname", record.Pathname)
//	})
//
// # Colors
//
// Colors are written only when stdout is a terminal. NoColor or the NO_COLOR
// environment variable turns them off. ResetColor restores terminal detection.
//
// Legacy Windows consoles get ASCII fallback symbols.
package cliout
