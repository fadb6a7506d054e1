package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/alnah/go-flashcards/internal/assets"
	"github.com/alnah/go-flashcards/internal/config"
	"github.com/alnah/go-flashcards/internal/fileutil"
	"github.com/alnah/go-flashcards/internal/yamlutil"
)

// ErrDeckExists indicates init would overwrite an existing deck file.
var ErrDeckExists = errors.New("deck file already exists")

// sampleDeckFile is the deck written by init.
const sampleDeckFile = defaultDeckName + ".yaml"

// runInit exports the built-in templates and a sample deck into a project
// directory (default "."). Nothing is written if any target exists and
// force is not set.
func runInit(positionalArgs []string, flags *initFlags, env *Environment, logger *slog.Logger) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: init takes at most one directory, got %d", errUsage, len(positionalArgs))
	}

	dir := "."
	if len(positionalArgs) == 1 {
		dir = positionalArgs[0]
	}

	deckPath := filepath.Join(dir, sampleDeckFile)
	if !flags.force && fileutil.FileExists(deckPath) {
		return fmt.Errorf("%w: %s", ErrDeckExists, deckPath)
	}

	data, err := yamlutil.Encode(config.SampleDeck())
	if err != nil {
		return fmt.Errorf("encoding sample deck: %w", err)
	}

	templateDir := filepath.Join(dir, config.DefaultTemplateDir)
	written, err := assets.Export(templateDir, flags.force)
	if err != nil {
		return fmt.Errorf("exporting templates: %w", err)
	}
	for _, p := range written {
		logger.Debug("template written", "path", p)
	}

	if err := atomic.WriteFile(deckPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", deckPath, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %d templates to %s\n", len(written), templateDir)
		fmt.Fprintf(env.Stdout, "Wrote %s\n", deckPath)
		fmt.Fprintf(env.Stdout, "Run 'flashcards build %s' to build it\n", deckPath)
	}
	return nil
}
