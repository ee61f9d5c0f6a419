// Package scene turns generated floor plans into deliverable documents. The
// SVG scenes built by the sink subpackage are the source of truth; this
// package converts them into PDFs and high-resolution PNGs.
package scene

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// installHint is appended to conversion errors when librsvg is missing.
const installHint = "requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts SVG bytes to a single-page PDF using rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale
// factor. Scale of 2.0 produces a 2x resolution image.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// ToPDFPages combines several SVG documents into one multi-page PDF, one
// page per input. rsvg-convert reads pages from files, so the SVGs are
// staged in a temp directory for the call.
func ToPDFPages(svgs [][]byte) ([]byte, error) {
	if len(svgs) == 0 {
		return nil, fmt.Errorf("no pages to convert")
	}
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("pdf export %s", installHint)
	}

	dir, err := os.MkdirTemp("", "planexa-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("stage pdf pages: %w", err)
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, svg := range svgs {
		path := filepath.Join(dir, fmt.Sprintf("page_%03d.svg", i))
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return nil, fmt.Errorf("stage pdf page %d: %w", i, err)
		}
		args = append(args, path)
	}

	cmd := exec.Command("rsvg-convert", args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export %s", format, installHint)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
