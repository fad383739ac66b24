// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts the first page of a PDF invoice into PNG and
// JPEG images. The rasterization itself is delegated to a Rasterizer
// backend; this package owns request validation, output ordering, and
// writing the encoded files.
package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/invoice-render/pkg/types"
)

// Format identifies an output image encoding.
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
)

// Output pairs a destination path with the format to write there.
type Output struct {
	Path   string
	Format Format
}

// Request holds the parameters of a single render invocation.
type Request struct {
	// InputPath is the source PDF.
	InputPath string

	// PNGPath and JPGPath are the output destinations; at least one
	// must be set.
	PNGPath string
	JPGPath string

	// DPI is the rasterization resolution. Zero means types.DefaultDPI.
	DPI int

	// JPEGQuality is the JPEG encoding quality, 1-100. Zero means
	// types.DefaultJPEGQuality.
	JPEGQuality int
}

// Outputs returns the requested outputs in declaration order: PNG first,
// then JPEG.
func (r Request) Outputs() []Output {
	var outputs []Output
	if r.PNGPath != "" {
		outputs = append(outputs, Output{Path: r.PNGPath, Format: FormatPNG})
	}
	if r.JPGPath != "" {
		outputs = append(outputs, Output{Path: r.JPGPath, Format: FormatJPEG})
	}
	return outputs
}

// Validate checks that the input PDF exists and at least one output was
// requested. It runs before any conversion work so that a bad invocation
// never touches the rasterizer.
func (r Request) Validate() error {
	if r.InputPath == "" {
		return fmt.Errorf("no input PDF specified")
	}
	if _, err := os.Stat(r.InputPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("PDF not found: %s", r.InputPath)
		}
		return fmt.Errorf("checking input %s: %w", r.InputPath, err)
	}
	if len(r.Outputs()) == 0 {
		return fmt.Errorf("specify at least one PNG or JPEG output path")
	}
	return nil
}

// Run executes a render request: validate, rasterize the PDF, take the
// first page, and write it to each requested output in order, printing a
// confirmation line per file to w. Outputs are written sequentially and
// best-effort: a failure on the second output leaves the first in place.
func Run(rast Rasterizer, req Request, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	dpi := req.DPI
	if dpi <= 0 {
		dpi = types.DefaultDPI
	}

	pages, err := rast.Render(req.InputPath, dpi)
	if err != nil {
		return fmt.Errorf("rasterizing %s: %w", req.InputPath, err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages rendered from %s", req.InputPath)
	}

	// Only the first page of the invoice is kept.
	firstPage := pages[0]

	for _, out := range req.Outputs() {
		if err := writeImage(firstPage, out, req.JPEGQuality); err != nil {
			return err
		}
		fmt.Fprintf(w, "Generated %s image at %s\n", out.Format, out.Path)
	}
	return nil
}

// writeImage encodes img to out.Path in out.Format, creating missing
// parent directories first. Existing files are overwritten so that a
// re-render at a new DPI replaces stale images.
func writeImage(img image.Image, out Output, quality int) error {
	if dir := filepath.Dir(out.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out.Path, err)
	}

	switch out.Format {
	case FormatPNG:
		err = imaging.Encode(f, img, imaging.PNG)
	case FormatJPEG:
		if quality <= 0 {
			quality = types.DefaultJPEGQuality
		}
		err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		err = fmt.Errorf("unknown output format %q", out.Format)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", out.Path, err)
	}
	return f.Close()
}
