// Package fileutil provides file and path helpers shared by the builder and
// the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrEmptyBaseName          = errors.New("output base name cannot be empty")
)

// Output file extensions.
const (
	HTMLExt = ".htm"
	PDFExt  = ".pdf"
)

const dirPermissions = 0o750

// WriteTempFile creates a file holding content inside dir (the system temp
// directory when dir is empty). The caller removes it with cleanup.
func WriteTempFile(dir, content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp(dir, ".flashcards-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// OutputPaths derives the HTML and PDF paths for a document base name.
// A trailing .htm, .html or .pdf on base is dropped so "deck.pdf" and "deck"
// name the same pair.
func OutputPaths(dir, base string) (htmlPath, pdfPath string, err error) {
	base = strings.TrimSpace(base)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".htm", ".html", ".pdf":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if base == "" || base == "." {
		return "", "", ErrEmptyBaseName
	}
	if dir == "" {
		dir = "."
	}
	stem := filepath.Join(dir, base)
	return stem + HTMLExt, stem + PDFExt, nil
}

// EnsureDir creates dir and its parents if missing.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
//	"deck"          -> false (name)
//	"./deck.yaml"   -> true
//	"decks/es.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
