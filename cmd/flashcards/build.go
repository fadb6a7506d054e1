package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	flashcards "github.com/alnah/go-flashcards"
	"github.com/alnah/go-flashcards/internal/assets"
	"github.com/alnah/go-flashcards/internal/config"
	"github.com/alnah/go-flashcards/internal/hints"
)

// defaultDeckName is looked up when no deck is given.
const defaultDeckName = "deck"

// runBuild loads a deck, merges env and flags, and builds the document.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment, logger *slog.Logger) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: build takes at most one deck, got %d", errUsage, len(positionalArgs))
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), logger)

	deckName := defaultDeckName
	switch {
	case len(positionalArgs) == 1:
		deckName = positionalArgs[0]
	case envCfg.Deck != "":
		deckName = envCfg.Deck
	}

	deck, err := config.LoadDeck(deckName)
	if err != nil {
		return fmt.Errorf("loading deck: %w", err)
	}

	applyEnvConfig(envCfg, deck)
	mergeFlags(flags, deck)
	deck.Normalize()
	if err := deck.Validate(); err != nil {
		return err
	}

	params, err := resolveBuildParams(deck, env, logger)
	if err != nil {
		return err
	}

	logger.Debug("building flashcards", "deck", deckName, "cards", len(deck.Cards), "grid", deck.Layout.Grid)
	start := env.Now()

	result, err := flashcards.Build(ctx, params.input, params.opts...)
	if result != nil && result.HTMLPath != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s (%d cards, %s)\n", result.HTMLPath, result.Cards, pagesLabel(result.Pages, deck.Layout.Sequential))
	}
	if err != nil {
		return err
	}

	if result.PDF != nil && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s (%d pages, %.2fx%.2f in)\n",
			result.PDFPath, result.PDF.Pages, result.PDF.Width, result.PDF.Height)
	}
	logger.Debug("done", "elapsed", env.Now().Sub(start).Round(time.Millisecond))
	return nil
}

// buildParams holds a resolved deck in library terms.
type buildParams struct {
	input flashcards.BuildInput
	opts  []flashcards.Option
}

// resolveBuildParams converts a validated deck to Build arguments.
func resolveBuildParams(deck *config.Deck, env *Environment, logger *slog.Logger) (*buildParams, error) {
	layout := flashcards.Layout{
		Sequential:       deck.Layout.Sequential,
		ImagePlaceholder: deck.Layout.ImagePlaceholder,
	}
	if !deck.Layout.Sequential {
		grid, err := flashcards.ParseGrid(deck.Layout.Grid)
		if err != nil {
			return nil, err
		}
		layout.Grid = grid
	}

	timeout, err := time.ParseDuration(deck.PDF.Timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: pdf.timeout: %v", config.ErrDeckInvalid, err)
	}

	opts := []flashcards.Option{
		flashcards.WithTitle(deck.Title),
		flashcards.WithOutputDir(deck.Output.Dir),
		flashcards.WithPageSettings(&flashcards.PageSettings{
			Size:        deck.Page.Size,
			Orientation: deck.Page.Orientation,
			Margin:      deck.Page.Margin,
		}),
		flashcards.WithTimeout(timeout),
		flashcards.WithLogger(logger),
	}
	if deck.Templates.Builtin {
		opts = append(opts, flashcards.WithBuiltinTemplates())
	} else {
		opts = append(opts, flashcards.WithTemplateDir(deck.Templates.Dir, deck.Templates.Fallback))
	}
	if env.Launcher != nil {
		opts = append(opts, flashcards.WithLauncher(env.Launcher))
	}

	return &buildParams{
		input: flashcards.BuildInput{
			Base:     deck.Output.Name,
			Cards:    toFlashcards(deck.Cards),
			Layout:   layout,
			HTMLOnly: deck.PDF.Disabled,
		},
		opts: opts,
	}, nil
}

// toFlashcards converts deck entries to library cards, keeping order.
func toFlashcards(cards []config.Card) []flashcards.Flashcard {
	out := make([]flashcards.Flashcard, len(cards))
	for i, c := range cards {
		out[i] = flashcards.Flashcard{
			ID:       c.UID,
			Position: c.Pos,
			English:  c.English,
			Local:    c.LWC,
			Phonetic: c.IPA,
			Notes:    c.Notes,
		}
		if c.Img != nil {
			out[i].Image = &flashcards.Image{Path: c.Img.Path, Width: c.Img.X, Height: c.Img.Y}
		}
	}
	return out
}

// mergeFlags applies CLI flags over deck values. Only flags given on the
// command line override.
func mergeFlags(flags *buildFlags, deck *config.Deck) {
	set := flags.set
	if set == nil {
		set = func(string) bool { return false }
	}

	if set("output") {
		deck.Output.Name = flags.output
	}
	if set("out-dir") {
		deck.Output.Dir = flags.outDir
	}
	if set("title") {
		deck.Title = flags.title
	}
	if set("timeout") {
		deck.PDF.Timeout = flags.timeout
	}
	if set("html-only") {
		deck.PDF.Disabled = flags.htmlOnly
	}

	if set("grid") {
		deck.Layout.Grid = flags.layout.grid
	}
	if set("sequential") {
		deck.Layout.Sequential = flags.layout.sequential
	}
	if set("image-size") {
		deck.Layout.ImagePlaceholder = flags.layout.imageSize
	}

	if set("page-size") {
		deck.Page.Size = flags.page.size
	}
	if set("orientation") {
		deck.Page.Orientation = flags.page.orientation
	}
	if set("margin") {
		deck.Page.Margin = flags.page.margin
	}

	if set("templates") {
		deck.Templates.Dir = flags.templates.dir
	}
	if set("builtin-templates") {
		deck.Templates.Builtin = flags.templates.builtin
	}
	if set("fallback-templates") {
		deck.Templates.Fallback = flags.templates.fallback
	}
}

// pagesLabel describes the page count of a build.
func pagesLabel(pages int, sequential bool) string {
	if sequential {
		return "sequential"
	}
	if pages == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", pages)
}

// hintFor returns a hint for common build failures, or "".
func hintFor(err error, templateDir string) string {
	switch {
	case errors.Is(err, flashcards.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(templateDir)
	case errors.Is(err, config.ErrDeckNotFound):
		return hints.ForDeckNotFound(config.SearchPaths(defaultDeckName))
	case errors.Is(err, flashcards.ErrInvalidGrid):
		return hints.ForGrid([]string{flashcards.Grid1x2.String(), flashcards.Grid2x3.String()})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, flashcards.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, flashcards.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, flashcards.ErrWriteHTML), errors.Is(err, flashcards.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrTemplateExists), errors.Is(err, ErrDeckExists):
		return hints.ForOverwrite()
	}
	return ""
}
