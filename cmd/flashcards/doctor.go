package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	flashcards "github.com/alnah/go-flashcards"
	"github.com/alnah/go-flashcards/internal/assets"
	"github.com/alnah/go-flashcards/internal/config"
	"github.com/alnah/go-flashcards/internal/fileutil"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"`
	Chrome    chromeInfo    `json:"chrome"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Templates templatesInfo `json:"templates"`
	Deck      *deckInfo     `json:"deck,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// templatesInfo reports which templates the default build would use.
type templatesInfo struct {
	Dir     string   `json:"dir"`
	Found   []string `json:"found,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// deckInfo summarizes the deck a plain 'flashcards' run would build.
type deckInfo struct {
	Path  string `json:"path"`
	Cards int    `json:"cards"`
	Grid  string `json:"grid"`
	Valid bool   `json:"valid"`
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd executes the doctor command and returns an exit code:
// 0 when ready (warnings included), 1 when errors were found.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	jsonOutput := fs.Bool("json", false, "output as JSON")
	templateDir := fs.String("templates", flashcards.DefaultTemplateDir, "template directory to check")
	if err := fs.Parse(args); err != nil {
		return flagErrorCode(err)
	}

	deckName := env.Getenv("FLASHCARDS_DECK")
	if deckName == "" {
		deckName = defaultDeckName
	}
	if fs.NArg() > 0 {
		deckName = fs.Arg(0)
	}

	result := runDoctor(env.Getenv, *templateDir, deckName)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(getenv func(string) string, templateDir, deckName string) *doctorResult {
	result := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  getenv("ROD_NO_SANDBOX"),
			BrowserBin: getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result)
	checkEnvironment(result, getenv)
	checkSystem(result)
	checkTemplates(result, templateDir)
	checkDeck(result, deckName, templateDir)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	default:
		result.Status = statusReady
	}
	return result
}

// checkChrome locates Chrome through ROD_BROWSER_BIN or rod's lookup.
// A missing browser is a warning: --html-only builds still work.
func checkChrome(result *doctorResult) {
	path := result.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			result.warn("Chrome/Chromium not found; PDF output needs it (install Chrome or set ROD_BROWSER_BIN)")
			return
		}
	}
	if _, err := os.Stat(path); err != nil {
		result.fail("Chrome not found at %s", path)
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = path
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"

	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		result.warn("Could not get Chrome version: %v", err)
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, getenv func(string) string) {
	result.Env.Container, result.Env.ContainerHint = isContainer(getenv)
	result.Env.CI = slices.ContainsFunc(ciVars, func(v string) bool { return getenv(v) != "" })

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer reports whether we run in a container and which signal said so.
func isContainer(getenv func(string) string) (bool, string) {
	if getenv("FLASHCARDS_CONTAINER") == "1" {
		return true, "FLASHCARDS_CONTAINER=1"
	}
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory accepts the HTML copy loaded by
// the browser.
func checkSystem(result *doctorResult) {
	_, cleanup, err := fileutil.WriteTempFile("", "<html></html>", "htm")
	if err != nil {
		result.fail("Temp directory not writable: %s", os.TempDir())
		return
	}
	cleanup()
	result.System.TempWritable = true
}

// checkTemplates reports which templates dir provides. Missing files are a
// warning since --fallback-templates or --builtin-templates still build.
func checkTemplates(result *doctorResult, dir string) {
	result.Templates.Dir = dir

	loader, err := assets.NewFilesystemLoader(dir)
	if err != nil {
		result.fail("Template directory unusable: %v", err)
		return
	}

	for _, name := range assets.NewEmbeddedLoader().Names() {
		if _, err := loader.LoadTemplate(name); err != nil {
			result.Templates.Missing = append(result.Templates.Missing, name)
			continue
		}
		result.Templates.Found = append(result.Templates.Found, name)
	}

	if len(result.Templates.Missing) > 0 {
		result.warn("Templates missing from %s: %s. Run 'flashcards init' or use --builtin-templates",
			dir, strings.Join(result.Templates.Missing, ", "))
	}
}

// checkDeck loads the deck a plain build would use. The default deck being
// absent is fine before 'flashcards init'; any other failure is an error.
func checkDeck(result *doctorResult, name, templateDir string) {
	deck, err := config.LoadDeck(name)
	if err != nil {
		if errors.Is(err, config.ErrDeckNotFound) && name == defaultDeckName {
			return
		}
		result.Deck = &deckInfo{Path: name}
		result.fail("Deck %s: %v", name, err)
		return
	}

	result.Deck = &deckInfo{Path: name, Cards: len(deck.Cards), Grid: deck.Layout.Grid, Valid: true}
	if !deck.Layout.Sequential {
		checkPageTemplate(result, deck, templateDir)
	}
}

// checkPageTemplate loads the deck grid's page template the way a build
// would and checks that every card slot is present.
func checkPageTemplate(result *doctorResult, deck *config.Deck, templateDir string) {
	grid, err := flashcards.ParseGrid(deck.Layout.Grid)
	if err != nil {
		result.fail("Deck grid: %v", err)
		return
	}
	name := assets.PageTemplateName(grid.Columns, grid.Rows)

	loader, err := templateLoader(deck.Templates, templateDir)
	if err != nil {
		return // reported by checkTemplates
	}

	tmpl, err := loader.LoadTemplate(name)
	switch {
	case errors.Is(err, assets.ErrTemplateNotFound):
		result.warn("Deck grid %s needs template %s.htm.in in %s", grid, name, templateDir)
	case err != nil:
		result.fail("Page template %s: %v", name, err)
	default:
		if err := flashcards.CheckPageTemplate(tmpl, grid); err != nil {
			result.warn("Deck grid %s: %v", grid, err)
		}
	}
}

// templateLoader mirrors the template source a build with tc would use.
func templateLoader(tc config.TemplatesConfig, dir string) (assets.Loader, error) {
	switch {
	case tc.Builtin:
		return assets.NewEmbeddedLoader(), nil
	case tc.Fallback:
		return assets.NewResolver(dir)
	default:
		return assets.NewFilesystemLoader(dir)
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "flashcards doctor")
	fmt.Fprintln(w)

	section(w, "Chrome/Chromium", func(line func(ok bool, format string, args ...any)) {
		if !r.Chrome.Found {
			line(false, "Not found")
			return
		}
		line(true, "Found at %s", r.Chrome.Path)
		if r.Chrome.Version != "" {
			line(true, "Version: %s", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			line(true, "Sandbox: enabled")
		} else {
			line(true, "Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	})

	section(w, "Environment", func(line func(ok bool, format string, args ...any)) {
		line(true, "Platform: %s/%s", r.Env.OS, r.Env.Arch)
		if r.Env.Container {
			line(true, "Container: detected (%s)", r.Env.ContainerHint)
		}
		if r.Env.CI {
			line(true, "CI: detected")
		}
	})

	section(w, "System", func(line func(ok bool, format string, args ...any)) {
		line(r.System.TempWritable, "Temp directory: writable=%t", r.System.TempWritable)
	})

	section(w, "Templates", func(line func(ok bool, format string, args ...any)) {
		total := len(r.Templates.Found) + len(r.Templates.Missing)
		line(len(r.Templates.Missing) == 0, "%s: %d of %d templates present", r.Templates.Dir, len(r.Templates.Found), total)
	})

	if r.Deck != nil {
		section(w, "Deck", func(line func(ok bool, format string, args ...any)) {
			line(r.Deck.Valid, "%s: %d cards, grid %s", r.Deck.Path, r.Deck.Cards, r.Deck.Grid)
		})
	}

	list(w, "Warnings:", "[WARN]", r.Warnings)
	list(w, "Errors:", "[ERROR]", r.Errors)

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func section(w io.Writer, title string, body func(line func(ok bool, format string, args ...any))) {
	fmt.Fprintln(w, title)
	body(func(ok bool, format string, args ...any) {
		mark := "[OK]"
		if !ok {
			mark = "[WARN]"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, fmt.Sprintf(format, args...))
	})
	fmt.Fprintln(w)
}

func list(w io.Writer, title, mark string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", mark, item)
	}
	fmt.Fprintln(w)
}
