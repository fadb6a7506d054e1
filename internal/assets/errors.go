package assets

import "errors"

// Sentinel errors for template loading.
var (
	// ErrTemplateNotFound indicates the requested template file does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the template name contains path separators,
	// dots or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid template name")

	// ErrInvalidBasePath indicates the template directory path exists but is
	// not a directory.
	ErrInvalidBasePath = errors.New("invalid template directory")

	// ErrAssetRead indicates an I/O error other than not-found.
	ErrAssetRead = errors.New("failed to read template")

	// ErrPathTraversal indicates an attempt to read outside the template directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
