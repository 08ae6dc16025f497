// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// FitGeometry returns where an origW x origH image ends up when fitted
// into a targetW x targetH box by Fit: the rectangle it is scaled to,
// centred in the box. Neither side of the rectangle is ever zero.
func FitGeometry(origW, origH, targetW, targetH int) image.Rectangle {
	origRatio := float64(origW) / float64(origH)
	targetRatio := float64(targetW) / float64(targetH)

	var w, h int
	if origRatio > targetRatio {
		w = targetW
		h = int(float64(targetW) / origRatio)
	} else {
		h = targetH
		w = int(float64(targetH) * origRatio)
	}

	// an extreme aspect ratio can floor a side to nothing
	w = clamp(w, 1, targetW)
	h = clamp(h, 1, targetH)

	x := (targetW - w) / 2
	y := (targetH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Fit scales an image to fit within targetW x targetH, preserving its
// aspect ratio, and centres it on a white canvas of exactly that size.
// Scaling uses a Lanczos filter. The output has the same mode as the
// input; for Bilevel input the resampled image is binarised again at
// the midpoint, so the result still only holds Ink and Background.
func Fit(p *PixelMap, targetW, targetH int) (*PixelMap, error) {
	if err := p.valid("fit"); err != nil {
		return nil, err
	}
	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("fit: target size %dx%d must be positive", targetW, targetH)
	}

	inner := FitGeometry(p.Width(), p.Height(), targetW, targetH)

	var src image.Image
	switch p.mode {
	case Bilevel, Grayscale:
		src = p.gray()
	default:
		src = p.img
	}
	scaled := resize.Resize(uint(inner.Dx()), uint(inner.Dy()), src, resize.Lanczos3)

	out := NewPixelMap(p.mode, targetW, targetH)
	switch dst := out.img.(type) {
	case *image.Gray:
		draw.Draw(dst, inner, scaled, scaled.Bounds().Min, draw.Src)
		if p.mode == Bilevel {
			for i, v := range dst.Pix {
				if v <= 127 {
					dst.Pix[i] = Ink
				} else {
					dst.Pix[i] = Background
				}
			}
		}
	case *image.RGBA:
		draw.Draw(dst, inner, scaled, scaled.Bounds().Min, draw.Src)
	}

	return out, nil
}
