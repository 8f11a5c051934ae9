package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Cyan = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols for CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

// EnvNoColor disables color output when set to any value.
const EnvNoColor = "NO_COLOR"

var (
	// mu protects global state variables
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = false
)

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ResetColor restores terminal detection after NoColor.
func ResetColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// ColorEnabled reports whether styled output is written. Colors are off when
// stdout is not a terminal, when NO_COLOR is set, or after NoColor.
func ColorEnabled() bool {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()

	if disabled || os.Getenv(EnvNoColor) != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code, ConEmu and PowerShell render Unicode; cmd.exe does not.
	for _, key := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "TERM"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// style wraps text in an ANSI sequence when colors are enabled.
func style(code, text string) string {
	if !ColorEnabled() {
		return text
	}
	return code + text + Reset
}

// stdout is resolved on every write so tests can swap os.Stdout.
func stdout() io.Writer {
	return os.Stdout
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch strings.ToLower(format) {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml", "yml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true for the machine-readable formats.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(stdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(stdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Fprintf(stdout(), "\n%s\n", style(Bold, text))
	fmt.Fprintln(stdout(), strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(stdout(), "%s %s\n", style(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), msg)
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(stdout(), "%s %s\n", style(BrightRed, getIcon(SymbolCross, ASCIICross)), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(stdout(), "%s  %s\n", style(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(stdout(), "%s  %s\n", style(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), msg)
}

// Label prints a label and value pair. Empty values print as a dimmed dash.
func Label(label, value string) {
	if value == "" {
		value = Muted("-")
	}
	fmt.Fprintf(stdout(), "   %s %s\n", style(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Item prints an indented item
func Item(format string, args ...any) {
	fmt.Fprintf(stdout(), "   %s\n", fmt.Sprintf(format, args...))
}

// Newline prints a blank line
func Newline() {
	fmt.Fprintln(stdout())
}

// Highlight returns highlighted text
func Highlight(format string, args ...any) string {
	return style(Bold+Cyan, fmt.Sprintf(format, args...))
}

// Muted returns dim text
func Muted(format string, args ...any) string {
	return style(Dim, fmt.Sprintf(format, args...))
}
