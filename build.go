package flashcards

import (
	"context"
	"fmt"
)

// Layout controls how rendered cards are placed in the document.
type Layout struct {
	Grid             Grid // ignored when Sequential
	Sequential       bool // one continuous flow, no page structure
	ImagePlaceholder int  // side in pixels of the spacer for cards without image
}

// DefaultLayout returns a 2x3 grid with a 120px placeholder.
func DefaultLayout() Layout {
	return Layout{Grid: Grid2x3, ImagePlaceholder: DefaultImagePlaceholder}
}

// BuildInput describes one document to build.
type BuildInput struct {
	Base     string // output base name, without extension
	Cards    []Flashcard
	Layout   Layout
	HTMLOnly bool // skip PDF rendering
}

// BuildResult reports what Build wrote.
type BuildResult struct {
	HTMLPath string
	PDFPath  string // empty when HTMLOnly
	Cards    int
	Pages    int      // 0 for sequential layouts
	PDF      *PDFInfo // nil when HTMLOnly
}

// Build creates a document, renders every card, lays them out, persists the
// HTML and renders the PDF unless in.HTMLOnly is set.
func Build(ctx context.Context, in BuildInput, opts ...Option) (*BuildResult, error) {
	if !in.Layout.Sequential {
		if err := in.Layout.Grid.Validate(); err != nil {
			return nil, err
		}
	}

	doc, err := Create(in.Base, opts...)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, 0, len(in.Cards))
	for _, card := range in.Cards {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		html, err := doc.RenderFlashcard(card, in.Layout.ImagePlaceholder)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, html)
	}

	if in.Layout.Sequential {
		err = doc.AppendSequential(rendered)
	} else {
		_, err = doc.AppendPaginated(rendered, in.Layout.Grid)
	}
	if err != nil {
		return nil, fmt.Errorf("laying out cards: %w", err)
	}

	htmlPath, err := doc.Persist()
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		HTMLPath: htmlPath,
		Cards:    len(in.Cards),
		Pages:    doc.Pages(),
	}
	if in.HTMLOnly {
		return result, nil
	}

	info, err := doc.RenderToPDF(ctx, nil)
	if err != nil {
		return result, err
	}
	result.PDFPath = info.Path
	result.PDF = info
	return result, nil
}
