package flashcards

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/alnah/go-flashcards/internal/assets"
	"github.com/alnah/go-flashcards/internal/fileutil"
)

// closingMarkup ends the document opened by the header template.
const closingMarkup = "</body></html>"

// Document accumulates the HTML of one flashcard document.
//
// A Document starts with the header template, grows through
// AppendSequential and AppendPaginated, is finalized exactly once, then
// persisted and optionally rendered to PDF. It is not safe for concurrent
// use.
type Document struct {
	loader   TemplateLoader
	notes    notesRenderer
	logger   *slog.Logger
	launcher Launcher
	page     *PageSettings
	timeout  time.Duration

	title    string
	htmlPath string
	pdfPath  string

	buf       strings.Builder
	finalized bool
	persisted bool
	pages     int
}

// Create starts a document named base: "<base>.htm" and "<base>.pdf" in
// the output directory. The header template is loaded immediately; if it
// is missing the error wraps ErrTemplateNotFound and nothing is written.
func Create(base string, opts ...Option) (*Document, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.page.Validate(); err != nil {
		return nil, err
	}

	htmlPath, pdfPath, err := fileutil.OutputPaths(s.outputDir, base)
	if err != nil {
		return nil, err
	}

	loader, err := s.resolveLoader()
	if err != nil {
		return nil, err
	}

	header, err := loader.LoadTemplate(assets.HeaderTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading header template: %w", err)
	}

	notes := s.notes
	if notes == nil {
		notes = newGoldmarkNotes()
	}

	d := &Document{
		loader:   loader,
		notes:    notes,
		logger:   s.logger,
		launcher: s.launcher,
		page:     s.page,
		timeout:  s.timeout,
		title:    s.title,
		htmlPath: htmlPath,
		pdfPath:  pdfPath,
	}
	d.buf.WriteString(Fill(header, map[string]string{"title": html.EscapeString(s.title)}))

	return d, nil
}

// resolveLoader picks the template source from the collected options.
func (s *settings) resolveLoader() (TemplateLoader, error) {
	switch {
	case s.loader != nil:
		return s.loader, nil
	case s.builtin:
		return assets.NewEmbeddedLoader(), nil
	case s.fallback:
		return assets.NewResolver(s.templateDir)
	default:
		return assets.NewFilesystemLoader(s.templateDir)
	}
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.title
}

// HTMLPath returns the path Persist writes to.
func (d *Document) HTMLPath() string {
	return d.htmlPath
}

// PDFPath returns the path RenderToPDF writes to.
func (d *Document) PDFPath() string {
	return d.pdfPath
}

// Pages returns the number of pages appended by AppendPaginated.
func (d *Document) Pages() int {
	return d.pages
}

// Finalized reports whether the closing markup has been appended.
func (d *Document) Finalized() bool {
	return d.finalized
}

// String returns the document HTML accumulated so far.
func (d *Document) String() string {
	return d.buf.String()
}

// RenderFlashcard fills the flash template with one card. The template is
// re-read on every call so edits show up without restarting. The image
// slot gets an <img> sized to the card's image, or a blank square of
// imagePlaceholderSize pixels when the card has none. The document itself
// is not modified.
//
// English, Local and Phonetic are HTML-escaped, so inline markup such as
// "<i>agua</i>" shows as literal text. Use Notes (Markdown) for formatting.
func (d *Document) RenderFlashcard(card Flashcard, imagePlaceholderSize int) (string, error) {
	if imagePlaceholderSize < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPlaceholder, imagePlaceholderSize)
	}

	tmpl, err := d.loader.LoadTemplate(assets.FlashTemplate)
	if err != nil {
		return "", fmt.Errorf("loading flash template: %w", err)
	}

	notes, err := d.notes.RenderNotes(card.Notes)
	if err != nil {
		return "", fmt.Errorf("card %d: %w", card.ID, err)
	}

	return Fill(tmpl, map[string]string{
		"uid":     strconv.Itoa(card.ID),
		"pos":     strconv.Itoa(card.Position),
		"english": html.EscapeString(card.English),
		"lwc":     html.EscapeString(card.Local),
		"ipa":     html.EscapeString(card.Phonetic),
		"imgPath": imageMarkup(card.Image, imagePlaceholderSize),
		"notes":   notes,
	}), nil
}

// imageMarkup returns the card's <img>, or a spacer keeping the layout
// when there is no image.
func imageMarkup(img *Image, placeholderSize int) string {
	if img == nil {
		return fmt.Sprintf(`<div style="width:%dpx; height:%dpx"></div>`, placeholderSize, placeholderSize)
	}
	return fmt.Sprintf(`<p><img src="%s" class="img-fluid rounded" width="%d" height="%d"></p>`,
		html.EscapeString(img.Path), img.Width, img.Height)
}

// AppendSequential appends rendered cards one after another with no page
// structure.
func (d *Document) AppendSequential(cards []string) error {
	if d.finalized {
		return ErrDocumentFinalized
	}
	for _, c := range cards {
		d.buf.WriteString(c)
	}
	return nil
}

// AppendPaginated lays rendered cards out grid.PerPage() to a page using
// the grid's page template, whose ${card0}..${cardN-1} slots are filled in
// order. Slots past the last card are left empty. Returns the number of
// pages appended.
func (d *Document) AppendPaginated(cards []string, grid Grid) (int, error) {
	if d.finalized {
		return 0, ErrDocumentFinalized
	}
	if err := grid.Validate(); err != nil {
		return 0, err
	}

	tmpl, err := d.loader.LoadTemplate(grid.templateName())
	if err != nil {
		return 0, fmt.Errorf("loading %s page template: %w", grid, err)
	}

	if err := CheckPageTemplate(tmpl, grid); err != nil {
		return 0, err
	}

	perPage := grid.PerPage()

	pages := paginate(cards, perPage)
	for _, group := range pages {
		values := make(map[string]string, perPage)
		for slot := range perPage {
			values[slotName(slot)] = group[slot]
		}
		d.buf.WriteString(Fill(tmpl, values))
	}

	d.pages += len(pages)
	return len(pages), nil
}

// paginate splits cards into consecutive groups of exactly perPage entries,
// padding the last group with empty strings.
func paginate(cards []string, perPage int) [][]string {
	if perPage < 1 || len(cards) == 0 {
		return nil
	}
	n := (len(cards) + perPage - 1) / perPage
	pages := make([][]string, 0, n)
	for start := 0; start < len(cards); start += perPage {
		group := make([]string, perPage)
		copy(group, cards[start:min(start+perPage, len(cards))])
		pages = append(pages, group)
	}
	return pages
}

// slotName returns the placeholder name of a page slot.
func slotName(i int) string {
	return "card" + strconv.Itoa(i)
}

// Finalize appends the closing markup. Later calls do nothing.
func (d *Document) Finalize() {
	if d.finalized {
		return
	}
	d.buf.WriteString(closingMarkup)
	d.finalized = true
}

// Persist finalizes the document and writes it to HTMLPath. The file is
// replaced atomically so a crash never leaves a truncated document.
// Returns the written path.
func (d *Document) Persist() (string, error) {
	d.Finalize()

	if err := fileutil.EnsureDir(filepath.Dir(d.htmlPath)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	if err := atomic.WriteFile(d.htmlPath, strings.NewReader(d.buf.String())); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	d.persisted = true
	d.logger.Info("flashcards written", "path", d.htmlPath, "pages", d.pages, "bytes", d.buf.Len())
	return d.htmlPath, nil
}

// RenderToPDF reads the persisted HTML back from disk, loads it into a
// rendering engine and exports PDFPath at the document's page size. The
// engine is released on every return path. A nil launch uses the
// WithLauncher engine, or headless Chrome.
func (d *Document) RenderToPDF(ctx context.Context, launch Launcher) (info *PDFInfo, err error) {
	if !d.persisted {
		return nil, ErrNotPersisted
	}

	content, err := os.ReadFile(d.htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadHTML, err)
	}

	if launch == nil {
		launch = d.launcher
	}
	if launch == nil {
		launch = RodLauncher(d.timeout)
	}

	engine, err := launch(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("releasing rendering engine: %w", cerr)
			} else {
				d.logger.Warn("releasing rendering engine", "error", cerr)
			}
		}
	}()

	baseDir, err := filepath.Abs(filepath.Dir(d.htmlPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadHTML, err)
	}

	d.logger.Debug("loading document into rendering engine", "path", d.htmlPath)
	if err := engine.Load(ctx, string(content), baseDir); err != nil {
		return nil, err
	}

	if err := fileutil.EnsureDir(filepath.Dir(d.pdfPath)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	if err := engine.ExportPDF(ctx, d.pdfPath, d.page); err != nil {
		return nil, err
	}

	info, err = InspectPDF(d.pdfPath)
	if err != nil {
		return nil, err
	}

	d.logger.Info("PDF written", "path", d.pdfPath, "pages", info.Pages)
	return info, nil
}
