// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-flashcards/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	hints = append(hints, "use --html-only to skip the PDF")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for large decks.
func ForTimeout() string {
	return format("for large decks or slow image hosts, use --timeout")
}

// ForDeckNotFound returns hints for deck file not found errors.
// Suggests `flashcards init` and the user config location, if searched.
func ForDeckNotFound(searchedPaths []string) string {
	hint := "run 'flashcards init' to create deck.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-flashcards/") {
			hint += ", or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound returns hints for a template missing from dir.
func ForTemplateNotFound(dir string) string {
	return formatHints([]string{
		"run 'flashcards init' to export the default templates to " + dir,
		"or use --builtin-templates / --fallback-templates",
	})
}

// ForGrid returns a hint listing grids that have a built-in page template.
func ForGrid(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in grids: " + strings.Join(available, ", ") + "; other grids need page<C>x<R>.htm.in")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOverwrite returns a hint for init refusing to replace files.
func ForOverwrite() string {
	return format("use --force to overwrite")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
