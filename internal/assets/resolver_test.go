package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("directory configures custom loader", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}
	})

	t.Run("file path returns error", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "x")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewResolver(file); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "flash", "custom flash")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("custom wins", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadTemplate("flash")
		if err != nil {
			t.Fatal(err)
		}
		if got != "custom flash" {
			t.Errorf("LoadTemplate(flash) = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadTemplate("header")
		if err != nil {
			t.Fatal(err)
		}
		embedded, _ := NewEmbeddedLoader().LoadTemplate("header")
		if got != embedded {
			t.Error("LoadTemplate(header) should return the embedded header")
		}
	})

	t.Run("not found anywhere", func(t *testing.T) {
		t.Parallel()

		_, err := r.LoadTemplate("page4x4")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("validation error is not masked", func(t *testing.T) {
		t.Parallel()

		_, err := r.LoadTemplate("../flash")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("error = %v, want ErrInvalidAssetName", err)
		}
	})
}
