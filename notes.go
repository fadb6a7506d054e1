package flashcards

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// notesRenderer converts a card's Markdown notes to an HTML fragment.
type notesRenderer interface {
	RenderNotes(markdown string) (string, error)
}

// goldmarkNotes renders notes with goldmark. Raw HTML in notes is escaped
// (goldmark's default without html.WithUnsafe).
type goldmarkNotes struct {
	md goldmark.Markdown
}

// newGoldmarkNotes creates a goldmarkNotes with the inline extensions that
// make sense on a card.
func newGoldmarkNotes() *goldmarkNotes {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // a line break in the deck is a line break on the card
			html.WithXHTML(),
		),
	)
	return &goldmarkNotes{md: md}
}

// RenderNotes returns "" for blank notes.
func (g *goldmarkNotes) RenderNotes(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotesRender, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Compile-time interface check.
var _ notesRenderer = (*goldmarkNotes)(nil)
