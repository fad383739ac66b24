// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reports the page count and page dimensions of a PDF
// without rasterizing it.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// pointsPerInch is the PDF user-space unit density.
const pointsPerInch = 72.0

// PageDim holds the media box size of a single page in points.
type PageDim struct {
	Width  float64 `json:"width_pt"`
	Height float64 `json:"height_pt"`
}

// Info describes a PDF document.
type Info struct {
	Path  string    `json:"path"`
	Pages int       `json:"pages"`
	Dims  []PageDim `json:"page_dims"`
}

// Inspect reads the page count and per-page media box dimensions of the
// PDF at path.
func Inspect(path string) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("PDF not found: %s", path)
		}
		return nil, fmt.Errorf("checking input %s: %w", path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	info := &Info{Path: path, Pages: len(dims)}
	for _, d := range dims {
		info.Dims = append(info.Dims, PageDim{Width: d.Width, Height: d.Height})
	}
	return info, nil
}

// Report prints a human-readable description of the document to w, one
// line per page with sizes in points and centimeters.
func (i *Info) Report(w io.Writer) {
	fmt.Fprintf(w, "%s: %d page(s)\n", i.Path, i.Pages)
	for n, d := range i.Dims {
		fmt.Fprintf(w, "  page %d: %.2f x %.2f pt (%.2f x %.2f cm)\n",
			n+1, d.Width, d.Height, toCm(d.Width), toCm(d.Height))
	}
}

// ReportJSON prints the document description as indented JSON.
func (i *Info) ReportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(i)
}

// toCm converts a length in PDF points to centimeters.
func toCm(pt float64) float64 {
	return pt * 2.54 / pointsPerInch
}
