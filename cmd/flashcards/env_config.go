package main

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-flashcards/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without editing the deck file.
type envConfig struct {
	Deck         string // FLASHCARDS_DECK: deck name or path
	TemplateDir  string // FLASHCARDS_TEMPLATES: template directory
	OutputDir    string // FLASHCARDS_OUTPUT_DIR: output directory
	PageSize     string // FLASHCARDS_PAGE_SIZE: a4, letter, legal
	Grid         string // FLASHCARDS_GRID: CxR
	Timeout      string // FLASHCARDS_TIMEOUT: PDF rendering timeout
	BuiltinTempl bool   // FLASHCARDS_BUILTIN_TEMPLATES=1
}

// knownEnvVars lists valid FLASHCARDS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"FLASHCARDS_DECK":              true,
	"FLASHCARDS_TEMPLATES":         true,
	"FLASHCARDS_OUTPUT_DIR":        true,
	"FLASHCARDS_PAGE_SIZE":         true,
	"FLASHCARDS_GRID":              true,
	"FLASHCARDS_TIMEOUT":           true,
	"FLASHCARDS_BUILTIN_TEMPLATES": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		Deck:         getenv("FLASHCARDS_DECK"),
		TemplateDir:  getenv("FLASHCARDS_TEMPLATES"),
		OutputDir:    getenv("FLASHCARDS_OUTPUT_DIR"),
		PageSize:     getenv("FLASHCARDS_PAGE_SIZE"),
		Grid:         getenv("FLASHCARDS_GRID"),
		Timeout:      getenv("FLASHCARDS_TIMEOUT"),
		BuiltinTempl: getenv("FLASHCARDS_BUILTIN_TEMPLATES") == "1",
	}
}

// warnUnknownEnvVars logs warnings for unrecognized FLASHCARDS_* variables.
func warnUnknownEnvVars(environ []string, logger *slog.Logger) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "FLASHCARDS_") && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides deck values with set environment variables.
// Precedence: CLI flags > env vars > deck file > defaults
// (CLI flags are applied later via mergeFlags). Values are validated with
// the rest of the deck.
func applyEnvConfig(env *envConfig, deck *config.Deck) {
	if env.TemplateDir != "" {
		deck.Templates.Dir = env.TemplateDir
	}
	if env.BuiltinTempl {
		deck.Templates.Builtin = true
	}
	if env.OutputDir != "" {
		deck.Output.Dir = env.OutputDir
	}
	if env.PageSize != "" {
		deck.Page.Size = env.PageSize
	}
	if env.Grid != "" {
		deck.Layout.Grid = env.Grid
	}
	if env.Timeout != "" {
		deck.PDF.Timeout = env.Timeout
	}
}
