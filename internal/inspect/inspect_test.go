// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeOnePagePDF assembles a minimal single-page PDF (US Letter media
// box, no content stream) at path. Object offsets for the xref table are
// taken from the buffer as it grows, so the file is always well-formed.
func writeOnePagePDF(t *testing.T, path string) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}
	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	addObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n")

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestInspectOnePagePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	writeOnePagePDF(t, path)

	info, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, info.Path)
	assert.Equal(t, 1, info.Pages)
	require.Len(t, info.Dims, 1)
	assert.InDelta(t, 612.0, info.Dims[0].Width, 0.01)
	assert.InDelta(t, 792.0, info.Dims[0].Height, 0.01)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF not found")
}

func TestReport(t *testing.T) {
	info := &Info{
		Path:  "invoice.pdf",
		Pages: 2,
		Dims: []PageDim{
			{Width: 595.28, Height: 841.89}, // A4
			{Width: 612, Height: 792},       // US Letter
		},
	}

	var buf bytes.Buffer
	info.Report(&buf)
	out := buf.String()

	assert.Contains(t, out, "invoice.pdf: 2 page(s)")
	assert.Contains(t, out, "page 1: 595.28 x 841.89 pt")
	assert.Contains(t, out, "(21.00 x 29.70 cm)")
	assert.Contains(t, out, "page 2: 612.00 x 792.00 pt")
}

func TestReportJSON(t *testing.T) {
	info := &Info{
		Path:  "invoice.pdf",
		Pages: 1,
		Dims:  []PageDim{{Width: 612, Height: 792}},
	}

	var buf bytes.Buffer
	require.NoError(t, info.ReportJSON(&buf))

	var got Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *info, got)
}
