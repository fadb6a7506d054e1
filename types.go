package flashcards

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-flashcards/internal/assets"
)

// Flashcard is one vocabulary entry. It is read, never modified.
type Flashcard struct {
	ID       int    // ${uid}
	Position int    // ${pos}
	English  string // ${english}
	Local    string // ${lwc}, language of wider communication
	Phonetic string // ${ipa}
	Image    *Image // ${imgPath}; nil prints a blank spacer
	Notes    string // ${notes}, Markdown
}

// Image references a picture printed on a card, sized in pixels.
type Image struct {
	Path   string
	Width  int
	Height int
}

// Grid is the arrangement of cards on one printed page.
type Grid struct {
	Columns int
	Rows    int
}

// Built-in grids, each with an embedded page template.
var (
	Grid1x2 = Grid{Columns: 1, Rows: 2}
	Grid2x3 = Grid{Columns: 2, Rows: 3}
)

// maxGridSide bounds columns and rows to keep templates sane.
const maxGridSide = 99

// ParseGrid parses "CxR" (e.g. "2x3") into a Grid.
func ParseGrid(s string) (Grid, error) {
	cols, rows, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Grid{}, fmt.Errorf("%w: %q (want columns x rows, e.g. 2x3)", ErrInvalidGrid, s)
	}
	c, errC := strconv.Atoi(cols)
	r, errR := strconv.Atoi(rows)
	if errC != nil || errR != nil {
		return Grid{}, fmt.Errorf("%w: %q (want columns x rows, e.g. 2x3)", ErrInvalidGrid, s)
	}
	g := Grid{Columns: c, Rows: r}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// PerPage returns the number of card slots on one page.
func (g Grid) PerPage() int {
	return g.Columns * g.Rows
}

// String returns the "CxR" form.
func (g Grid) String() string {
	return strconv.Itoa(g.Columns) + "x" + strconv.Itoa(g.Rows)
}

// Validate checks both dimensions are in 1..99.
func (g Grid) Validate() error {
	if g.Columns < 1 || g.Rows < 1 || g.Columns > maxGridSide || g.Rows > maxGridSide {
		return fmt.Errorf("%w: %s (columns and rows must be between 1 and %d)", ErrInvalidGrid, g, maxGridSide)
	}
	return nil
}

// templateName returns the page template this grid fills.
func (g Grid) templateName() string {
	return assets.PageTemplateName(g.Columns, g.Rows)
}

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches. Cards are often cut edge to edge, so zero is allowed.
const (
	MinMargin     = 0.0
	MaxMargin     = 3.0
	DefaultMargin = 0.4
)

// paperSizes maps page sizes to portrait width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 portrait.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be a4, letter, or legal)", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Dimensions returns the paper width and height in inches, swapped for
// landscape. Nil settings yield A4 portrait.
func (p *PageSettings) Dimensions() (width, height float64) {
	if p == nil {
		p = DefaultPageSettings()
	}
	dims, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		dims = paperSizes[PageSizeA4]
	}
	width, height = dims[0], dims[1]
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height
}

// Default option values.
const (
	DefaultTitle            = "Flash Cards"
	DefaultTemplateDir      = "templates"
	DefaultImagePlaceholder = 120
	defaultTimeout          = 60 * time.Second
)
