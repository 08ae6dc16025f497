// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"image"
	"strings"
)

// BoolMatrix is a row major grid of dots, true where a dot should be
// raised (ink). All rows are the same length.
type BoolMatrix [][]bool

// ToMatrix reads the dots off a Bilevel map: true for ink pixels,
// false for background. Other modes need thresholding first, so give
// an error wrapping ErrInvalidState.
func ToMatrix(p *PixelMap) (BoolMatrix, error) {
	if err := p.valid("matrix"); err != nil {
		return nil, err
	}
	if p.mode != Bilevel {
		return nil, fmt.Errorf("matrix: image is %s, not bilevel: %w", p.mode, ErrInvalidState)
	}
	gray := p.img.(*image.Gray)
	b := gray.Bounds()

	m := make(BoolMatrix, b.Dy())
	for y := range m {
		row := make([]bool, b.Dx())
		for x := range row {
			row[x] = gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y == Ink
		}
		m[y] = row
	}
	return m, nil
}

// Height returns the number of rows
func (m BoolMatrix) Height() int {
	return len(m)
}

// Width returns the number of columns
func (m BoolMatrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Count returns the number of raised dots
func (m BoolMatrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func (m BoolMatrix) at(x, y int) bool {
	if y >= len(m) || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// braillebits maps a dot's position within a 2x4 cell to its bit in
// the Unicode Braille Patterns block, where dots 1-3 run down the left
// column, 4-6 down the right, and 7 and 8 sit underneath.
var braillebits = [4][2]uint{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Braille renders the matrix as lines of 8 dot Braille pattern
// characters, each covering 2x4 dots, which is about as close as a
// terminal can get to showing what a tactile display will.
func (m BoolMatrix) Braille() string {
	var sb strings.Builder
	w, h := m.Width(), m.Height()
	for cy := 0; cy < h; cy += 4 {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < w; cx += 2 {
			var v rune
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if m.at(cx+dx, cy+dy) {
						v |= 1 << braillebits[dy][dx]
					}
				}
			}
			sb.WriteRune('⠀' + v)
		}
	}
	return sb.String()
}
