// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"image"
)

// Rasterizer converts a PDF file into one image per page. Different
// backends (MuPDF today, pdfium or poppler later) implement this
// interface.
type Rasterizer interface {
	// Render rasterizes every page of the PDF at the given DPI and
	// returns the page images in order.
	Render(pdfPath string, dpi int) ([]image.Image, error)

	// Close releases any resources held by the rasterizer.
	Close() error
}

// NewRasterizer returns the default MuPDF-backed rasterizer.
func NewRasterizer() (Rasterizer, error) {
	return NewFitzRasterizer()
}
