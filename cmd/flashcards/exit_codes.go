package main

import (
	"errors"
	"os"

	flashcards "github.com/alnah/go-flashcards"
	"github.com/alnah/go-flashcards/internal/assets"
	"github.com/alnah/go-flashcards/internal/config"
	"github.com/alnah/go-flashcards/internal/fileutil"
)

// Exit codes for the flashcards CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document built
	ExitGeneral = 1 // General/unexpected error, missing or broken template
	ExitUsage   = 2 // Invalid flags, deck, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// errUsage marks command-line mistakes (unknown command, bad flag).
var errUsage = errors.New("usage error")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template errors come first: a missing template file may also wrap
	// os.ErrNotExist, and it must stay a general failure.
	if errors.Is(err, flashcards.ErrTemplateNotFound) ||
		errors.Is(err, flashcards.ErrIncompleteTemplate) {
		return ExitGeneral
	}

	// Browser errors (exit 4)
	if errors.Is(err, flashcards.ErrBrowserConnect) ||
		errors.Is(err, flashcards.ErrPageCreate) ||
		errors.Is(err, flashcards.ErrPageLoad) ||
		errors.Is(err, flashcards.ErrNoContent) ||
		errors.Is(err, flashcards.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, config.ErrDeckNotFound) ||
		errors.Is(err, config.ErrEmptyDeckName) ||
		errors.Is(err, config.ErrDeckParse) ||
		errors.Is(err, config.ErrDeckInvalid) ||
		errors.Is(err, flashcards.ErrInvalidGrid) ||
		errors.Is(err, flashcards.ErrInvalidPageSize) ||
		errors.Is(err, flashcards.ErrInvalidOrientation) ||
		errors.Is(err, flashcards.ErrInvalidMargin) ||
		errors.Is(err, flashcards.ErrInvalidPlaceholder) ||
		errors.Is(err, flashcards.ErrInvalidTemplateDir) ||
		errors.Is(err, fileutil.ErrEmptyBaseName) ||
		errors.Is(err, assets.ErrTemplateExists) ||
		errors.Is(err, ErrDeckExists) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, flashcards.ErrWriteHTML) ||
		errors.Is(err, flashcards.ErrReadHTML) ||
		errors.Is(err, flashcards.ErrWritePDF) ||
		errors.Is(err, flashcards.ErrPDFInspect) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
