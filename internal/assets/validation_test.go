package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{"header", "header", nil},
		{"page grid", "page2x3", nil},
		{"hyphen", "my-flash", nil},
		{"underscore", "my_flash", nil},

		// Invalid names
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "sub/header", ErrInvalidAssetName},
		{"backslash", "sub\\header", ErrInvalidAssetName},
		{"parent traversal", "../header", ErrInvalidAssetName},
		{"extension", "header.htm", ErrInvalidAssetName},
		{"null byte", "header\x00", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestPageTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		columns, rows int
		want          string
	}{
		{1, 2, "page1x2"},
		{2, 3, "page2x3"},
		{3, 4, "page3x4"},
	}
	for _, tt := range tests {
		if got := PageTemplateName(tt.columns, tt.rows); got != tt.want {
			t.Errorf("PageTemplateName(%d, %d) = %q, want %q", tt.columns, tt.rows, got, tt.want)
		}
	}
}
