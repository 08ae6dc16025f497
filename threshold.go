// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"rescribe.xyz/preproc"
)

// ToBilevel converts an image of any mode to a Bilevel one, using a
// global threshold. A pixel becomes ink if its luminance is less
// than or equal to threshold, and background otherwise. threshold is
// clamped to the range 0-255.
func ToBilevel(p *PixelMap, threshold int) (*PixelMap, error) {
	if err := p.valid("threshold"); err != nil {
		return nil, err
	}
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 255 {
		threshold = 255
	}
	t := uint8(threshold)
	return bilevelFrom(p.gray(), func(l uint8) bool { return l <= t }), nil
}

// autowsize picks a Sauvola window size based on the image width,
// the same way the preproc tools do, forced to be odd and at least 3.
func autowsize(bounds image.Rectangle) int {
	w := bounds.Dx() / 60
	if w < 3 {
		w = 3
	}
	if w%2 == 0 {
		w++
	}
	return w
}

// ToBilevelSauvola converts an image to Bilevel using Sauvola's
// adaptive thresholding, which copes far better than a global
// threshold with uneven lighting. ksize controls the overall
// threshold level (0.5 is a good start; lower it for light text).
// If windowsize is 0 it is chosen from the image width.
func ToBilevelSauvola(p *PixelMap, ksize float64, windowsize int) (*PixelMap, error) {
	if err := p.valid("sauvola"); err != nil {
		return nil, err
	}
	gray := p.gray()
	if windowsize <= 0 {
		windowsize = autowsize(gray.Bounds())
	}
	if windowsize%2 == 0 {
		windowsize++
	}
	bin := preproc.IntegralSauvola(gray, ksize, windowsize)
	// preproc marks ink as 0 and everything else 255, but make sure
	// nothing in between slips through
	return bilevelFrom(bin, func(l uint8) bool { return l < 128 }), nil
}

// Dither converts an image to Bilevel with Floyd-Steinberg error
// diffusion, which keeps some of the tone of photographs.
func Dither(p *PixelMap) (*PixelMap, error) {
	if err := p.valid("dither"); err != nil {
		return nil, err
	}
	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	pal := d.DitherPaletted(p.gray())
	b := pal.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if pal.ColorIndexAt(b.Min.X+x, b.Min.Y+y) == 0 {
				gray.Pix[y*gray.Stride+x] = Ink
			} else {
				gray.Pix[y*gray.Stride+x] = Background
			}
		}
	}
	return &PixelMap{mode: Bilevel, img: gray}, nil
}
