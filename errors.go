package flashcards

import (
	"errors"

	"github.com/alnah/go-flashcards/internal/assets"
)

// Sentinel errors for library operations.
var (
	// Template errors. ErrTemplateNotFound is fatal for a document: the CLI
	// exits with status 1 before writing anything.
	ErrTemplateNotFound   = assets.ErrTemplateNotFound
	ErrInvalidTemplateDir = assets.ErrInvalidBasePath
	ErrIncompleteTemplate = errors.New("page template missing card slot")

	// Document lifecycle errors.
	ErrDocumentFinalized = errors.New("document already finalized")
	ErrNotPersisted      = errors.New("document must be persisted before rendering")
	ErrWriteHTML         = errors.New("failed to write HTML file")
	ErrReadHTML          = errors.New("failed to read HTML file")

	// Rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrNoContent      = errors.New("no content loaded in rendering engine")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")
	ErrPDFInspect     = errors.New("failed to inspect PDF file")
	ErrNotesRender    = errors.New("notes markdown rendering failed")

	// Settings validation errors.
	ErrInvalidGrid        = errors.New("invalid grid")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidPlaceholder = errors.New("invalid image placeholder size")
)
