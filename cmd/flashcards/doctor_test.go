package main

// Notes:
// - Chrome detection depends on system state; it is checked only through
//   the consistency of status and exit code.
// - Environment variables are injected through Environment.Getenv, so
//   container and CI detection tests run in parallel.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-flashcards/internal/config"
	"github.com/alnah/go-flashcards/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(nil)
	exitCode := runDoctorCmd([]string{"--json", "--templates", t.TempDir()}, env.Environment)

	var result doctorResult
	if err := json.Unmarshal(env.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, env.stdout.String())
	}

	validStatuses := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !validStatuses[result.Status] {
		t.Errorf("Invalid status %q, expected ready/warnings/errors", result.Status)
	}
	if result.Status == "errors" && exitCode != ExitGeneral {
		t.Errorf("Expected exit code %d for errors status, got %d", ExitGeneral, exitCode)
	}
	if result.Status != "errors" && exitCode != ExitSuccess {
		t.Errorf("Expected exit code %d for non-error status, got %d", ExitSuccess, exitCode)
	}

	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}

	// An empty template directory is missing everything
	if len(result.Templates.Missing) != 4 || result.Status == "ready" {
		t.Errorf("templates = %+v, status %q; want 4 missing and not ready", result.Templates, result.Status)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Human-readable output format
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(nil)
	runDoctorCmd([]string{"--templates=" + t.TempDir()}, env.Environment)

	output := env.stdout.String()
	for _, section := range []string{
		"flashcards doctor",
		"Chrome/Chromium",
		"Environment",
		"System",
		"Templates",
		"Status:",
	} {
		if !strings.Contains(output, section) {
			t.Errorf("Output should contain section %q", section)
		}
	}
	if !strings.Contains(output, "flashcards init") {
		t.Error("missing templates should suggest flashcards init")
	}
}

// ---------------------------------------------------------------------------
// TestCheckTemplates - Template directory inspection
// ---------------------------------------------------------------------------

func TestCheckTemplates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"header", "flash"} {
		if err := os.WriteFile(filepath.Join(dir, name+".htm.in"), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	result := &doctorResult{}
	checkTemplates(result, dir)

	if !slices.Equal(result.Templates.Found, []string{"flash", "header"}) {
		t.Errorf("Found = %v, want [flash header]", result.Templates.Found)
	}
	if !slices.Equal(result.Templates.Missing, []string{"page1x2", "page2x3"}) {
		t.Errorf("Missing = %v, want [page1x2 page2x3]", result.Templates.Missing)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", result.Warnings)
	}
}

func TestCheckTemplates_NotADirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	result := &doctorResult{}
	checkTemplates(result, file)

	if len(result.Errors) != 1 {
		t.Errorf("Errors = %v, want one", result.Errors)
	}
}

// ---------------------------------------------------------------------------
// TestIsContainer / TestCheckEnvironment - Environment detection
// ---------------------------------------------------------------------------

func TestIsContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vars     map[string]string
		wantHint string
	}{
		{"explicit override", map[string]string{"FLASHCARDS_CONTAINER": "1"}, "FLASHCARDS_CONTAINER=1"},
		{"podman", map[string]string{"container": "podman"}, "container=podman"},
		{"kubernetes", map[string]string{"KUBERNETES_SERVICE_HOST": "10.0.0.1"}, "KUBERNETES_SERVICE_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, hint := isContainer(func(k string) string { return tt.vars[k] })
			if !in || hint != tt.wantHint {
				t.Errorf("isContainer() = (%v, %q), want (true, %q)", in, hint, tt.wantHint)
			}
		})
	}
}

func TestCheckEnvironment_CIWithoutNoSandbox(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"GITHUB_ACTIONS": "true"}
	result := &doctorResult{}
	checkEnvironment(result, func(k string) string { return vars[k] })

	if !result.Env.CI {
		t.Error("CI should be detected")
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "ROD_NO_SANDBOX") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want ROD_NO_SANDBOX suggestion", result.Warnings)
	}
}

// ---------------------------------------------------------------------------
// TestCheckDeck - Deck loading and grid templates
// ---------------------------------------------------------------------------

// writeDeck writes the sample deck with layout changed by edit and returns
// its path.
func writeDeck(t *testing.T, dir string, edit func(*config.Deck)) string {
	t.Helper()
	deck := config.SampleDeck()
	edit(deck)
	data, err := yamlutil.Encode(deck)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckDeck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		edit        func(*config.Deck)
		template    string // replaces page2x3.htm.in when set
		wantWarning string
	}{
		{
			name: "grid template present",
			edit: func(*config.Deck) {},
		},
		{
			name:        "custom grid without template",
			edit:        func(d *config.Deck) { d.Layout.Grid = "3x3" },
			wantWarning: "page3x3.htm.in",
		},
		{
			name:        "page template missing slots",
			edit:        func(*config.Deck) {},
			template:    `<section class="page">${card0}${card1}</section>`,
			wantWarning: "${card2}",
		},
		{
			name: "sequential ignores grid",
			edit: func(d *config.Deck) { d.Layout.Grid = "3x3"; d.Layout.Sequential = true },
		},
		{
			name:     "builtin templates cover the default grid",
			edit:     func(d *config.Deck) { d.Templates.Builtin = true },
			template: "<section></section>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := initProject(t)
			templates := filepath.Join(dir, "templates")
			if tt.template != "" {
				if err := os.WriteFile(filepath.Join(templates, "page2x3.htm.in"), []byte(tt.template), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			result := &doctorResult{}
			checkDeck(result, writeDeck(t, dir, tt.edit), templates)

			if result.Deck == nil || !result.Deck.Valid || result.Deck.Cards != 3 {
				t.Errorf("Deck = %+v, want valid with 3 cards", result.Deck)
			}
			if len(result.Errors) != 0 {
				t.Errorf("Errors = %v, want none", result.Errors)
			}
			switch {
			case tt.wantWarning == "" && len(result.Warnings) != 0:
				t.Errorf("Warnings = %v, want none", result.Warnings)
			case tt.wantWarning != "" && (len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], tt.wantWarning)):
				t.Errorf("Warnings = %v, want one mentioning %q", result.Warnings, tt.wantWarning)
			}
		})
	}
}

func TestCheckDeck_NotLoaded(t *testing.T) {
	t.Parallel()

	t.Run("default deck absent", func(t *testing.T) {
		t.Parallel()

		result := &doctorResult{}
		checkDeck(result, defaultDeckName, t.TempDir())
		if result.Deck != nil || len(result.Errors) != 0 {
			t.Errorf("absent default deck should be silent: %+v", result)
		}
	})

	t.Run("explicit deck missing", func(t *testing.T) {
		t.Parallel()

		result := &doctorResult{}
		checkDeck(result, filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
		if len(result.Errors) != 1 {
			t.Errorf("Errors = %v, want one", result.Errors)
		}
	})
}
