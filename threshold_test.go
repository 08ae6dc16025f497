// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

func TestToBilevel(t *testing.T) {
	src := grayMap(5, 0, 127, 128, 129, 255)
	cases := []struct {
		threshold int
		ink       []bool
	}{
		{128, []bool{true, true, true, false, false}},
		{127, []bool{true, true, false, false, false}},
		{0, []bool{true, false, false, false, false}},
		{-5, []bool{true, false, false, false, false}},
		{255, []bool{true, true, true, true, true}},
		{300, []bool{true, true, true, true, true}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.threshold), func(t *testing.T) {
			p, err := ToBilevel(src, c.threshold)
			if err != nil {
				t.Fatalf("Error thresholding: %v", err)
			}
			checkBilevel(t, p)
			for i, v := range p.img.(*image.Gray).Pix {
				if (v == Ink) != c.ink[i] {
					t.Fatalf("Pixel %d: expected ink %v, got value %d", i, c.ink[i], v)
				}
			}
		})
	}

	t.Run("unchanged", func(t *testing.T) {
		_, _ = ToBilevel(src, 128)
		if src.Mode() != Grayscale || src.img.(*image.Gray).Pix[1] != 127 {
			t.Fatalf("Source image was modified")
		}
	})

	t.Run("rgb", func(t *testing.T) {
		p := NewPixelMap(RGB, 3, 1)
		img := p.img.(*image.RGBA)
		img.Set(0, 0, color.RGBA{255, 0, 0, 255})   // luminance 76
		img.Set(1, 0, color.RGBA{0, 255, 0, 255})   // luminance 150
		img.Set(2, 0, color.RGBA{100, 100, 100, 255})
		b, err := ToBilevel(p, 128)
		if err != nil {
			t.Fatalf("Error thresholding: %v", err)
		}
		pix := b.img.(*image.Gray).Pix
		if pix[0] != Ink || pix[1] != Background || pix[2] != Ink {
			t.Fatalf("Unexpected result %v", pix)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, p := range []*PixelMap{nil, {}} {
			_, err := ToBilevel(p, 128)
			if !errors.Is(err, ErrInvalidState) {
				t.Fatalf("Expected ErrInvalidState, got %v", err)
			}
		}
	})
}

func TestToBilevelSauvola(t *testing.T) {
	cases := []struct {
		w, h, wsize int
	}{
		{60, 40, 0},
		{200, 100, 0},
		{60, 40, 8},
		{61, 41, 15},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d_%d", c.w, c.h, c.wsize), func(t *testing.T) {
			src := squareMap(c.w, c.h, c.h/2)
			p, err := ToBilevelSauvola(src, 0.5, c.wsize)
			if err != nil {
				t.Fatalf("Error binarizing: %v", err)
			}
			checkBilevel(t, p)
			if p.Width() != c.w || p.Height() != c.h {
				t.Fatalf("Expected %dx%d, got %dx%d", c.w, c.h, p.Width(), p.Height())
			}
		})
	}

	_, err := ToBilevelSauvola(nil, 0.5, 0)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
}

func TestAutowsize(t *testing.T) {
	cases := []struct {
		w, wsize int
	}{
		{10, 3},
		{180, 3},
		{240, 5},
		{600, 11},
		{660, 11},
		{2400, 41},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.w), func(t *testing.T) {
			got := autowsize(image.Rect(0, 0, c.w, 10))
			if got != c.wsize {
				t.Fatalf("Expected %d, got %d", c.wsize, got)
			}
		})
	}
}

func TestDither(t *testing.T) {
	cases := []struct {
		name string
		lum  uint8
		want uint8
	}{
		{"black", 0, Ink},
		{"white", 255, Background},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pix := make([]uint8, 16*16)
			for i := range pix {
				pix[i] = c.lum
			}
			p, err := Dither(grayMap(16, pix...))
			if err != nil {
				t.Fatalf("Error dithering: %v", err)
			}
			checkBilevel(t, p)
			for i, v := range p.img.(*image.Gray).Pix {
				if v != c.want {
					t.Fatalf("Pixel %d: expected %d, got %d", i, c.want, v)
				}
			}
		})
	}

	t.Run("square", func(t *testing.T) {
		p, err := Dither(squareMap(30, 20, 10))
		if err != nil {
			t.Fatalf("Error dithering: %v", err)
		}
		checkBilevel(t, p)
		if p.Width() != 30 || p.Height() != 20 {
			t.Fatalf("Expected 30x20, got %dx%d", p.Width(), p.Height())
		}
	})

	_, err := Dither(nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
}
