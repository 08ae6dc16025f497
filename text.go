// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	textMargin   = 10 // margin around the page, in pixels
	lineSpacing  = 5  // added to the font size to get the line advance
	paragraphGap = 5  // extra space after each paragraph
)

// FontDirs are searched, in order, for a font given by a relative
// path that isn't found in the current directory.
var FontDirs = []string{
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/TTF",
	"/Library/Fonts",
	`C:\Windows\Fonts`,
}

// Measurer gives the rendered width of a string in pixels
type Measurer interface {
	Measure(s string) int
}

// FaceMeasurer measures strings as drawn with a font.Face
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) Measure(s string) int {
	return font.MeasureString(m.Face, s).Ceil()
}

// Line is a line of laid out text, and the vertical offset of its top
type Line struct {
	Text string
	Y    int
}

// Layout word wraps text to fit a width x height page with the given
// font size, returning the lines and where each goes. Paragraphs are
// separated by newlines. Words are added to a line greedily while the
// line fits within the margins; a single word too long for a line is
// put on a line of its own regardless.
//
// Text which would start below the bottom margin is dropped, and
// truncated is set to report this.
func Layout(text string, width, height, fontSize int, m Measurer) (lines []Line, truncated bool, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, false, fmt.Errorf("layout: no text loaded: %w", ErrInvalidState)
	}

	maxWidth := width - 2*textMargin
	bottom := height - textMargin
	offset := textMargin

	// place adds a line at the current offset, reporting false if
	// there is no room left for it
	place := func(s string) bool {
		if offset > bottom {
			return false
		}
		lines = append(lines, Line{Text: s, Y: offset})
		offset += fontSize + lineSpacing
		return true
	}

	for _, paragraph := range strings.Split(text, "\n") {
		var line string
		for _, word := range strings.Fields(paragraph) {
			test := word
			if line != "" {
				test = line + " " + word
			}
			if line == "" || m.Measure(test) <= maxWidth {
				line = test
				continue
			}
			if !place(line) {
				return lines, true, nil
			}
			line = word
		}
		if line != "" && !place(line) {
			return lines, true, nil
		}
		offset += paragraphGap
	}

	return lines, false, nil
}

// readFont finds and reads a font file, first trying path as given
// and then relative to each of FontDirs.
func readFont(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil || filepath.IsAbs(path) {
		return b, err
	}
	for _, d := range FontDirs {
		b, err2 := os.ReadFile(filepath.Join(d, path))
		if err2 == nil {
			return b, nil
		}
	}
	return nil, err
}

// LoadFace loads the TrueType font at path at the given size in
// pixels. If that font can't be found or read, the built in Go Regular
// font is used instead; the returned bool reports whether the
// requested font was the one loaded.
func LoadFace(path string, size float64) (font.Face, bool) {
	opts := &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}
	if path != "" {
		if b, err := readFont(path); err == nil {
			if f, err := truetype.Parse(b); err == nil {
				return truetype.NewFace(f, opts), true
			}
		}
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13, false
	}
	return truetype.NewFace(f, opts), false
}

// Rasterize lays out text on a white width x height RGB page in
// black, using face, with the layout rules of Layout. Any text not
// fitting on the page is dropped.
func Rasterize(text string, width, height, fontSize int, face font.Face) (*PixelMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: page size %dx%d must be positive", width, height)
	}
	lines, _, err := Layout(text, width, height, fontSize, FaceMeasurer{face})
	if err != nil {
		return nil, err
	}

	p := NewPixelMap(RGB, width, height)
	d := &font.Drawer{
		Dst:  p.img.(*image.RGBA),
		Src:  image.Black,
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for _, l := range lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(textMargin),
			Y: fixed.I(l.Y) + ascent,
		}
		d.DrawString(l.Text)
	}
	return p, nil
}
