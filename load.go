// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"rescribe.xyz/utils/pkg/hocr"
)

// Format is the kind of source file, decided by its extension
type Format int

const (
	FormatUnknown Format = iota
	FormatImage
	FormatPDF
	FormatText
	FormatHOCR
)

func (f Format) String() string {
	switch f {
	case FormatImage:
		return "image"
	case FormatPDF:
		return "pdf"
	case FormatText:
		return "text"
	case FormatHOCR:
		return "hocr"
	}
	return "unknown"
}

// IsDocument reports whether the format holds text rather than pixels
func (f Format) IsDocument() bool {
	return f == FormatPDF || f == FormatText || f == FormatHOCR
}

var extFormats = map[string]Format{
	".png":  FormatImage,
	".jpg":  FormatImage,
	".jpeg": FormatImage,
	".gif":  FormatImage,
	".bmp":  FormatImage,
	".tif":  FormatImage,
	".tiff": FormatImage,
	".webp": FormatImage,
	".pdf":  FormatPDF,
	".txt":  FormatText,
	".hocr": FormatHOCR,
}

// DetectFormat decides the format of a file from its extension,
// ignoring case. Anything unrecognised gives an error wrapping
// ErrUnsupportedFormat.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		if ext == "" {
			ext = "(none)"
		}
		return FormatUnknown, fmt.Errorf("extension %s of %s: %w", ext, path, ErrUnsupportedFormat)
	}
	return f, nil
}

// exists returns an error wrapping ErrNotFound if path doesn't exist
func exists(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file %s: %w", path, ErrNotFound)
	}
	return err
}

// Detect checks that path exists, giving an error wrapping ErrNotFound
// if not, and then detects its format as DetectFormat does.
func Detect(path string) (Format, error) {
	if err := exists(path); err != nil {
		return FormatUnknown, err
	}
	return DetectFormat(path)
}

// LoadImage reads and decodes an image file
func LoadImage(path string) (*PixelMap, error) {
	f, err := Detect(path)
	if err != nil {
		return nil, err
	}
	if f != FormatImage {
		return nil, fmt.Errorf("%s is a %s document, not an image: %w", path, f, ErrUnsupportedFormat)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Could not open file %s: %w", path, err)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("Could not decode image %s: %w", path, err)
	}
	return FromImage(img), nil
}

// LoadDocument extracts the text from a pdf, txt or hOCR file. PDF
// pages each end with a newline.
func LoadDocument(path string) (string, error) {
	f, err := Detect(path)
	if err != nil {
		return "", err
	}

	var s string
	switch f {
	case FormatPDF:
		s, err = pdfText(path)
	case FormatText:
		s, err = txtText(path)
	case FormatHOCR:
		s, err = hocr.GetText(path)
	default:
		return "", fmt.Errorf("%s is an image, not a document: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return "", fmt.Errorf("Could not read text from %s: %w", path, err)
	}
	return s, nil
}

// txtText reads a UTF-8 text file, dropping any byte order mark,
// replacing invalid bytes, and normalising line endings to \n.
func txtText(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(fh, dec))
	if err != nil {
		return "", err
	}
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return string(b), nil
}

// pdfText extracts the text layer of each page of a PDF in turn
func pdfText(path string) (string, error) {
	r, err := reader.Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	n, err := r.PageCount()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		t, _, err := tabula.FromReader(r).Pages(i).Text()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if t != "" {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
