// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Ink and Background are the only two values a Bilevel PixelMap holds.
const (
	Ink        = 0
	Background = 255
)

// Mode is the colour mode of a PixelMap
type Mode int

const (
	// Bilevel maps are backed by an *image.Gray holding only Ink or Background
	Bilevel Mode = iota
	// Grayscale maps are backed by an *image.Gray
	Grayscale
	// RGB maps are backed by an *image.RGBA, and are always opaque
	RGB
)

func (m Mode) String() string {
	switch m {
	case Bilevel:
		return "bilevel"
	case Grayscale:
		return "grayscale"
	case RGB:
		return "rgb"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// PixelMap is an image together with its colour mode. The image
// always has its origin at (0, 0). Processing functions never
// change a PixelMap they are given; they return a new one.
type PixelMap struct {
	mode Mode
	img  image.Image
}

// NewPixelMap creates a PixelMap of the given size and mode,
// filled with background (white).
func NewPixelMap(mode Mode, w, h int) *PixelMap {
	r := image.Rect(0, 0, w, h)
	switch mode {
	case RGB:
		img := image.NewRGBA(r)
		draw.Draw(img, r, image.White, image.Point{}, draw.Src)
		return &PixelMap{mode: RGB, img: img}
	default:
		img := image.NewGray(r)
		for i := range img.Pix {
			img.Pix[i] = Background
		}
		return &PixelMap{mode: mode, img: img}
	}
}

// FromImage creates a PixelMap from any image. Gray images become
// Grayscale maps, everything else becomes RGB, flattened onto white.
func FromImage(img image.Image) *PixelMap {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		gray := image.NewGray(r)
		draw.Draw(gray, r, img, b.Min, draw.Src)
		return &PixelMap{mode: Grayscale, img: gray}
	}
	rgba := image.NewRGBA(r)
	draw.Draw(rgba, r, image.White, image.Point{}, draw.Src)
	draw.Draw(rgba, r, img, b.Min, draw.Over)
	return &PixelMap{mode: RGB, img: rgba}
}

// Mode returns the colour mode of the map
func (p *PixelMap) Mode() Mode {
	return p.mode
}

// Image returns the underlying image. It should be treated as read only.
func (p *PixelMap) Image() image.Image {
	return p.img
}

// Width returns the width of the map in pixels
func (p *PixelMap) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the height of the map in pixels
func (p *PixelMap) Height() int {
	return p.img.Bounds().Dy()
}

// valid checks that p is usable, returning an error wrapping
// ErrInvalidState if not. op names the operation for the message.
func (p *PixelMap) valid(op string) error {
	if p == nil || p.img == nil {
		return fmt.Errorf("%s: no image loaded: %w", op, ErrInvalidState)
	}
	b := p.img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%s: image is empty: %w", op, ErrInvalidState)
	}
	return nil
}

// gray returns a luminance copy of the map, with any transparency
// flattened onto white first. The conversion is done by
// color.GrayModel, which uses the ITU-R BT.601 weights.
func (p *PixelMap) gray() *image.Gray {
	b := p.img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	if g, ok := p.img.(*image.Gray); ok {
		gray := image.NewGray(r)
		draw.Draw(gray, r, g, b.Min, draw.Src)
		return gray
	}
	flat := image.NewRGBA(r)
	draw.Draw(flat, r, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, r, p.img, b.Min, draw.Over)
	gray := image.NewGray(r)
	draw.Draw(gray, r, flat, image.Point{}, draw.Src)
	return gray
}

// bilevelFrom builds a Bilevel map from a gray image, setting
// ink where isInk returns true for the luminance.
func bilevelFrom(gray *image.Gray, isInk func(uint8) bool) *PixelMap {
	b := gray.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := uint8(Background)
			if isInk(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y) {
				v = Ink
			}
			out.SetGray(x, y, color.Gray{v})
		}
	}
	return &PixelMap{mode: Bilevel, img: out}
}
