package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-flashcards/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"html", "html", nil},
		{"htm", "htm", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"forward slash", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash", "..\\win", fileutil.ErrExtensionPathTraversal},
		{"null byte", "htm\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp file lifecycle
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, cleanup, err := fileutil.WriteTempFile(dir, "<html></html>", "htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("temp file created in %q, want %q", filepath.Dir(path), dir)
	}
	if !strings.HasSuffix(path, ".htm") {
		t.Errorf("temp file %q should end with .htm", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Error("cleanup should remove the temp file")
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, _, err := fileutil.WriteTempFile(t.TempDir(), "x", "")
	if !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("error = %v, want ErrExtensionEmpty", err)
	}
}

func TestWriteTempFile_MissingDir(t *testing.T) {
	t.Parallel()

	_, _, err := fileutil.WriteTempFile(filepath.Join(t.TempDir(), "missing"), "x", "htm")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

// ---------------------------------------------------------------------------
// TestOutputPaths - Derives .htm and .pdf names
// ---------------------------------------------------------------------------

func TestOutputPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      string
		base     string
		wantHTML string
		wantPDF  string
		wantErr  error
	}{
		{"bare name", "", "flashcards", "flashcards.htm", "flashcards.pdf", nil},
		{"with dir", "out", "deck", filepath.Join("out", "deck.htm"), filepath.Join("out", "deck.pdf"), nil},
		{"pdf extension dropped", "", "deck.pdf", "deck.htm", "deck.pdf", nil},
		{"html extension dropped", "", "deck.HTML", "deck.htm", "deck.pdf", nil},
		{"other extension kept", "", "deck.v2", "deck.v2.htm", "deck.v2.pdf", nil},
		{"empty", "", "  ", "", "", fileutil.ErrEmptyBaseName},
		{"only extension", "", ".pdf", "", "", fileutil.ErrEmptyBaseName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotHTML, gotPDF, err := fileutil.OutputPaths(tt.dir, tt.base)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("OutputPaths() error = %v, want %v", err, tt.wantErr)
			}
			if gotHTML != tt.wantHTML || gotPDF != tt.wantPDF {
				t.Errorf("OutputPaths() = (%q, %q), want (%q, %q)", gotHTML, gotPDF, tt.wantHTML, tt.wantPDF)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir / TestFileExists / TestIsFilePath
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
	if err := fileutil.EnsureDir("."); err != nil {
		t.Errorf("EnsureDir(.) = %v, want nil", err)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.htm")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"deck":          false,
		"my-deck":       false,
		"./deck.yaml":   true,
		"decks/es.yaml": true,
		`C:\decks\es`:   true,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}
