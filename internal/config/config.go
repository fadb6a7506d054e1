package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-flashcards/internal/fileutil"
	"github.com/alnah/go-flashcards/internal/yamlutil"
)

// Sentinel errors for deck operations.
var (
	ErrDeckNotFound  = errors.New("deck file not found")
	ErrEmptyDeckName = errors.New("deck name cannot be empty")
	ErrDeckParse     = errors.New("failed to parse deck")
	ErrDeckInvalid   = errors.New("invalid deck")
)

// Defaults applied before a deck file is decoded.
const (
	DefaultTitle            = "Flash Cards"
	DefaultOutputName       = "flashcards"
	DefaultGrid             = "2x3"
	DefaultImagePlaceholder = 120
	DefaultPageSize         = "a4"
	DefaultOrientation      = "portrait"
	DefaultMargin           = 0.4
	DefaultTemplateDir      = "templates"
	DefaultTimeout          = "60s"
)

// Deck holds the flashcards of one document and how to lay them out.
type Deck struct {
	Title     string          `yaml:"title" validate:"max=200"`
	Output    OutputConfig    `yaml:"output"`
	Layout    LayoutConfig    `yaml:"layout"`
	Page      PageConfig      `yaml:"page"`
	Templates TemplatesConfig `yaml:"templates"`
	PDF       PDFConfig       `yaml:"pdf"`
	Cards     []Card          `yaml:"cards" validate:"required,min=1,dive"`
}

// OutputConfig names the generated files.
type OutputConfig struct {
	Name string `yaml:"name" validate:"required,max=255"` // base name, .htm/.pdf appended
	Dir  string `yaml:"dir" validate:"max=4096"` // empty = working directory
}

// LayoutConfig defines how cards are arranged on pages.
type LayoutConfig struct {
	Grid             string `yaml:"grid" validate:"omitempty,grid"` // "CxR", e.g. "2x3"
	Sequential       bool   `yaml:"sequential"`                     // one continuous flow, no pages
	ImagePlaceholder int    `yaml:"imagePlaceholder" validate:"gte=0,lte=2000"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size" validate:"omitempty,oneof=a4 letter legal"`
	Orientation string  `yaml:"orientation" validate:"omitempty,oneof=portrait landscape"`
	Margin      float64 `yaml:"margin" validate:"gte=0,lte=3"` // inches
}

// TemplatesConfig selects where templates are read from.
type TemplatesConfig struct {
	Dir      string `yaml:"dir" validate:"max=4096"`
	Builtin  bool   `yaml:"builtin"`  // ignore Dir, use compiled-in templates
	Fallback bool   `yaml:"fallback"` // use compiled-in copies of files missing from Dir
}

// PDFConfig defines PDF rendering options.
type PDFConfig struct {
	Disabled bool   `yaml:"disabled"` // write HTML only
	Timeout  string `yaml:"timeout" validate:"omitempty,duration"`
}

// Card is one vocabulary entry.
type Card struct {
	UID     int    `yaml:"uid" validate:"gte=0"`
	Pos     int    `yaml:"pos" validate:"gte=0"`
	English string `yaml:"english" validate:"required,max=500"`
	LWC     string `yaml:"lwc" validate:"max=500"` // language of wider communication
	IPA     string `yaml:"ipa" validate:"max=500"`
	Img     *Image `yaml:"img,omitempty"`
	Notes   string `yaml:"notes,omitempty" validate:"max=4000"` // Markdown
}

// Image references a picture printed on a card.
type Image struct {
	Path string `yaml:"path" validate:"required,max=4096"`
	X    int    `yaml:"x" validate:"gt=0,lte=4000"` // width in pixels
	Y    int    `yaml:"y" validate:"gt=0,lte=4000"` // height in pixels
}

var gridPattern = regexp.MustCompile(`^[1-9][0-9]?x[1-9][0-9]?$`)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report yaml names (cards[2].english) rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("grid", func(fl validator.FieldLevel) bool {
		return gridPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})

	return v
}

// Normalize lowercases enum-like fields so "A4" and "a4" are equivalent.
func (d *Deck) Normalize() {
	d.Layout.Grid = strings.ToLower(strings.TrimSpace(d.Layout.Grid))
	d.Page.Size = strings.ToLower(strings.TrimSpace(d.Page.Size))
	d.Page.Orientation = strings.ToLower(strings.TrimSpace(d.Page.Orientation))
}

// Validate checks the deck against its struct constraints.
// Called by LoadDeck, and by the CLI after flags are merged.
func (d *Deck) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrDeckInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrDeckInvalid, strings.Join(msgs, "; "))
}

// describe turns a validation failure into "field: reason".
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest // drop the root type name
	}

	switch fe.Tag() {
	case "required":
		return field + ": required"
	case "min":
		return fmt.Sprintf("%s: needs at least %s entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: exceeds maximum of %s", field, fe.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s: %v out of range (%s %s)", field, fe.Value(), fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: %q must be one of %s", field, fe.Value(), fe.Param())
	case "grid":
		return fmt.Sprintf("%s: %q must look like 2x3 (columns x rows)", field, fe.Value())
	case "duration":
		return fmt.Sprintf("%s: %q is not a positive duration (e.g. 30s, 2m)", field, fe.Value())
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// DefaultDeck returns a deck with default settings and no cards.
func DefaultDeck() *Deck {
	return &Deck{
		Title:  DefaultTitle,
		Output: OutputConfig{Name: DefaultOutputName},
		Layout: LayoutConfig{
			Grid:             DefaultGrid,
			ImagePlaceholder: DefaultImagePlaceholder,
		},
		Page: PageConfig{
			Size:        DefaultPageSize,
			Orientation: DefaultOrientation,
			Margin:      DefaultMargin,
		},
		Templates: TemplatesConfig{Dir: DefaultTemplateDir},
		PDF:       PDFConfig{Timeout: DefaultTimeout},
	}
}

// LoadDeck loads a deck from a file path or a deck name.
// A value containing a path separator is read as a file. A bare name is
// searched as {name}.yaml / {name}.yml in the working directory, then in
// the user config directory under go-flashcards/.
// Keys missing from the file keep their DefaultDeck values.
func LoadDeck(nameOrPath string) (*Deck, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyDeckName
	}

	deckPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) && !fileutil.FileExists(nameOrPath) {
		var err error
		deckPath, err = resolveDeckPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(deckPath) // #nosec G304 -- deck path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckPath)
		}
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	deck := DefaultDeck()
	if err := yamlutil.Decode(data, deck, yamlutil.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeckParse, deckPath, err)
	}

	deck.Normalize()
	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// SearchPaths lists where a bare deck name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-flashcards", name+ext))
		}
	}
	return paths
}

// resolveDeckPath returns the first existing SearchPaths entry.
func resolveDeckPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrDeckNotFound, strings.Join(paths, ", "))
}
