// Package output renders API resources as tables, JSON, or YAML.
package output

import (
	"fmt"
	"os"
	"strings"
)

// Format selects the rendering style.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, or yaml)", s)
	}
}

// PrintError outputs an error message to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintWarning outputs a warning message to stderr.
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}

// PrintInfo outputs an info message to stderr so it never pollutes
// piped stdout.
func PrintInfo(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", msg)
}

// truncate shortens s for table display, keeping a leading fragment.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}

// shortTimestamp trims an RFC 3339 timestamp to "YYYY-MM-DD HH:MM".
func shortTimestamp(s string) string {
	if len(s) > 16 {
		s = s[:16]
	}
	return strings.Replace(s, "T", " ", 1)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
