package report

import (
	"fmt"

	"github.com/mandolyte/mdtopdf"
)

// Reports render as portrait A4 with the light theme.
const (
	pdfOrientation = "P"
	pdfPageSize    = "A4"
)

// writePDF renders already-generated report markdown as a PDF at pdfPath.
func writePDF(markdown []byte, pdfPath string) error {
	renderer := mdtopdf.NewPdfRenderer(pdfOrientation, pdfPageSize, pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
