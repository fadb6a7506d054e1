package flashcards

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const pointsPerInch = 72.0

// PDFInfo describes a rendered PDF file.
type PDFInfo struct {
	Path   string
	Pages  int
	Width  float64 // first page, inches
	Height float64 // first page, inches
}

// InspectPDF reads the page count and the first page size of the PDF at
// path. A file that does not parse as PDF is an error.
func InspectPDF(path string) (*PDFInfo, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPDFInspect, path, err)
	}

	info := &PDFInfo{Path: path, Pages: pages}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPDFInspect, path, err)
	}
	if len(dims) > 0 {
		info.Width = dims[0].Width / pointsPerInch
		info.Height = dims[0].Height / pointsPerInch
	}

	return info, nil
}
