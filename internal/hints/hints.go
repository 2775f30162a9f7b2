// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-mdpdf) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdpdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForAddrInUse returns hints for listen failures on a busy address.
func ForAddrInUse(addr string) string {
	return format("another process is listening on " + addr + "; use --addr to pick a different port")
}

// ForFontsMissing returns hints when the fonts directory lacks the TTF files.
func ForFontsMissing(dir string) string {
	return format("place Barlow-Regular.ttf, Barlow-Bold.ttf and FiraCode-Regular.ttf in " +
		dir + " or pass --fonts-dir")
}

// ForTimeout returns a hint about raising the conversion deadline.
func ForTimeout() string {
	return format("for large documents, raise server.timeoutSeconds in the config")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
