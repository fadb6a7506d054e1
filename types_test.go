package flashcards

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseGrid - "CxR" parsing
// ---------------------------------------------------------------------------

func TestParseGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Grid
		wantErr error
	}{
		{"2x3", Grid2x3, nil},
		{"1X2", Grid1x2, nil},
		{" 4x4 ", Grid{Columns: 4, Rows: 4}, nil},
		{"", Grid{}, ErrInvalidGrid},
		{"2", Grid{}, ErrInvalidGrid},
		{"ax3", Grid{}, ErrInvalidGrid},
		{"0x3", Grid{}, ErrInvalidGrid},
		{"2x100", Grid{}, ErrInvalidGrid},
		{"-1x2", Grid{}, ErrInvalidGrid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGrid(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseGrid(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGrid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGrid(t *testing.T) {
	t.Parallel()

	if got := Grid2x3.PerPage(); got != 6 {
		t.Errorf("Grid2x3.PerPage() = %d, want 6", got)
	}
	if got := Grid1x2.PerPage(); got != 2 {
		t.Errorf("Grid1x2.PerPage() = %d, want 2", got)
	}
	if got := Grid2x3.String(); got != "2x3" {
		t.Errorf("Grid2x3.String() = %q", got)
	}
	if got := Grid2x3.templateName(); got != "page2x3" {
		t.Errorf("Grid2x3.templateName() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestPageSettings - Validation and paper dimensions
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil", nil, nil},
		{"default", DefaultPageSettings(), nil},
		{"letter landscape", &PageSettings{Size: "Letter", Orientation: "LANDSCAPE", Margin: 1}, nil},
		{"zero margin", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0}, nil},
		{"max margin", &PageSettings{Size: "legal", Orientation: "portrait", Margin: MaxMargin}, nil},
		{"unknown size", &PageSettings{Size: "a3", Orientation: "portrait"}, ErrInvalidPageSize},
		{"empty size", &PageSettings{Orientation: "portrait"}, ErrInvalidPageSize},
		{"unknown orientation", &PageSettings{Size: "a4", Orientation: "diagonal"}, ErrInvalidOrientation},
		{"negative margin", &PageSettings{Size: "a4", Orientation: "portrait", Margin: -0.1}, ErrInvalidMargin},
		{"margin too large", &PageSettings{Size: "a4", Orientation: "portrait", Margin: 3.1}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.page.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          *PageSettings
		width, height float64
	}{
		{"nil is a4", nil, 8.27, 11.69},
		{"a4 portrait", DefaultPageSettings(), 8.27, 11.69},
		{"letter landscape", &PageSettings{Size: PageSizeLetter, Orientation: OrientationLandscape}, 11, 8.5},
		{"legal", &PageSettings{Size: PageSizeLegal, Orientation: OrientationPortrait}, 8.5, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := tt.page.Dimensions()
			if w != tt.width || h != tt.height {
				t.Errorf("Dimensions() = %.2fx%.2f, want %.2fx%.2f", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildPDFOptions(&PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 0.25})

	if *opts.PaperWidth != 8.5 || *opts.PaperHeight != 11 {
		t.Errorf("paper = %.2fx%.2f, want 8.5x11", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top": opts.MarginTop, "bottom": opts.MarginBottom, "left": opts.MarginLeft, "right": opts.MarginRight,
	} {
		if *m != 0.25 {
			t.Errorf("margin %s = %.2f, want 0.25", name, *m)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be set so card borders print")
	}

	if def := buildPDFOptions(nil); *def.PaperWidth != 8.27 {
		t.Errorf("nil settings width = %.2f, want A4", *def.PaperWidth)
	}
}
