package assets

import "strconv"

// TemplateExt is the file extension of template fragments.
const TemplateExt = ".htm.in"

// Template names every document uses.
const (
	HeaderTemplate = "header"
	FlashTemplate  = "flash"
)

// Loader defines the contract for loading template fragments by name.
type Loader interface {
	// LoadTemplate returns the raw text of {name}.htm.in.
	// Returns ErrTemplateNotFound if it doesn't exist and ErrInvalidAssetName
	// if the name is unsafe.
	LoadTemplate(name string) (string, error)
}

// PageTemplateName returns the template name of a columns x rows page.
func PageTemplateName(columns, rows int) string {
	return "page" + strconv.Itoa(columns) + "x" + strconv.Itoa(rows)
}
