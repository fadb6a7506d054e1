package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/alnah/go-flashcards/internal/fileutil"
)

// ErrTemplateExists indicates Export would overwrite an existing file.
var ErrTemplateExists = errors.New("template file already exists")

// Export writes every embedded template into dir as {name}.htm.in so it can
// be customised. Existing files are kept unless overwrite is set.
// Returns the written paths.
func Export(dir string, overwrite bool) ([]string, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, err
	}

	embedded := NewEmbeddedLoader()
	names := embedded.Names()

	// Refuse before writing anything so a partial export never happens.
	if !overwrite {
		for _, name := range names {
			path := filepath.Join(dir, name+TemplateExt)
			if fileutil.FileExists(path) {
				return nil, fmt.Errorf("%w: %s", ErrTemplateExists, path)
			}
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		content, err := embedded.LoadTemplate(name)
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, name+TemplateExt)
		if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
