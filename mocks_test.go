package flashcards

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alnah/go-flashcards/internal/assets"
)

// Mock implementations for testing.

// mockLoader serves templates from a map.
type mockLoader struct {
	mu        sync.Mutex
	templates map[string]string
	calls     map[string]int
}

func newMockLoader(templates map[string]string) *mockLoader {
	return &mockLoader{templates: templates, calls: make(map[string]int)}
}

// testTemplates returns minimal templates exercising every placeholder.
func testTemplates() map[string]string {
	return map[string]string{
		assets.HeaderTemplate: "<html><head><title>${title}</title></head><body>",
		assets.FlashTemplate:  `<div class="card">${imgPath}|${uid}|${pos}|${english}|${lwc}|${ipa}|${notes}</div>`,
		"page1x2":             `<section class="page">[${card0}][${card1}]</section>`,
		"page2x3":             `<section class="page">[${card0}][${card1}][${card2}][${card3}][${card4}][${card5}]</section>`,
	}
}

func (m *mockLoader) LoadTemplate(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
	content, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return content, nil
}

// mockEngine records calls and writes a small valid PDF with one page per
// <section class="page"> in the loaded content.
type mockEngine struct {
	loadErr   error
	exportErr error
	closeErr  error

	loaded  string
	baseDir string
	page    *PageSettings
	closed  int
}

func (m *mockEngine) Load(ctx context.Context, html, baseDir string) error {
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = html
	m.baseDir = baseDir
	return nil
}

func (m *mockEngine) ExportPDF(ctx context.Context, path string, page *PageSettings) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	if m.loaded == "" {
		return ErrNoContent
	}
	m.page = page
	pages := max(1, strings.Count(m.loaded, `<section class="page`))
	width, height := page.Dimensions()
	return os.WriteFile(path, minimalPDF(pages, width*pointsPerInch, height*pointsPerInch), 0o600)
}

func (m *mockEngine) Close() error {
	m.closed++
	return m.closeErr
}

var _ Engine = (*mockEngine)(nil)

// mockLauncher returns a Launcher handing out engine, counting launches.
func mockLauncher(engine *mockEngine, launches *int) Launcher {
	return func(ctx context.Context) (Engine, error) {
		if launches != nil {
			*launches++
		}
		return engine, nil
	}
}

// failingLauncher returns a Launcher that always fails with err.
func failingLauncher(err error) Launcher {
	return func(ctx context.Context) (Engine, error) {
		return nil, err
	}
}

// withNotes replaces the notes renderer.
func withNotes(r notesRenderer) Option {
	return func(s *settings) {
		s.notes = r
	}
}

type mockNotes struct {
	output string
	err    error
}

func (m *mockNotes) RenderNotes(markdown string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

// minimalPDF builds an uncompressed PDF with the given number of blank
// pages of width x height points.
func minimalPDF(pages int, width, height float64) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> >>", width, height))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}
