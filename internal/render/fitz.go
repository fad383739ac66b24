// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/invoice-render/pkg/types"
)

// FitzRasterizer implements Rasterizer on go-fitz (MuPDF).
type FitzRasterizer struct{}

// NewFitzRasterizer creates a MuPDF-backed rasterizer.
func NewFitzRasterizer() (*FitzRasterizer, error) {
	return &FitzRasterizer{}, nil
}

// Render rasterizes every page of the PDF at the given DPI.
func (r *FitzRasterizer) Render(pdfPath string, dpi int) ([]image.Image, error) {
	if dpi <= 0 {
		dpi = types.DefaultDPI
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF document: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	images := make([]image.Image, 0, numPages)
	for n := 0; n < numPages; n++ {
		img, err := doc.ImageDPI(n, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", n+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// Close releases rasterizer resources. The fitz document is closed per
// Render call, so there is nothing to release here.
func (r *FitzRasterizer) Close() error {
	return nil
}
