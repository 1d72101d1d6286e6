// Package colorize highlights EVM listings for terminal output.
package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

// Disabled reports whether EVMDIS_NO_COLOR turns colors off.
func Disabled() bool {
	return os.Getenv("EVMDIS_NO_COLOR") != ""
}

// getStyle returns the named style with fallbacks
func getStyle(name string) *chroma.Style {
	candidates := []string{name, "evm-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		// styles.Get falls back silently, so check the registry directly.
		if style, ok := styles.Registry[name]; ok {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Listing highlights a full listing with the named style. Plain text is
// returned unchanged when colors are disabled.
func Listing(listing, style string) (string, error) {
	if Disabled() || listing == "" {
		return listing, nil
	}

	iterator, err := EVM.Tokenise(nil, listing)
	if err != nil {
		return listing, fmt.Errorf("tokenise listing: %w", err)
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getStyle(style), iterator); err != nil {
		return listing, fmt.Errorf("format listing: %w", err)
	}
	return buf.String(), nil
}

// Line highlights a single listing line and falls back to the plain line on
// any error.
func Line(line, style string) string {
	colored, err := Listing(line, style)
	if err != nil {
		return line
	}
	return colored
}
