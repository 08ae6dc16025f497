// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MaxColumns is the most panels shown side by side in a preview
const MaxColumns = 4

const (
	panelSize   = 256 // width and height of each image panel
	titleHeight = 20
	panelGap    = 8
)

// GridSize returns how many columns and rows are used to show n
// images: a single row for up to MaxColumns, otherwise rows of
// MaxColumns.
func GridSize(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	if n <= MaxColumns {
		return n, 1
	}
	return MaxColumns, (n + MaxColumns - 1) / MaxColumns
}

// Titles returns the title for each of n images, using those given
// and filling in any missing with "Image 1", "Image 2" and so on.
func Titles(n int, titles []string) []string {
	t := make([]string, n)
	for i := range t {
		if i < len(titles) && titles[i] != "" {
			t[i] = titles[i]
		} else {
			t[i] = fmt.Sprintf("Image %d", i+1)
		}
	}
	return t
}

// ContactSheet draws the maps in a grid, each scaled to fit a square
// panel with its title above. Nearest neighbour scaling is used so
// that individual dots of small maps stay sharp.
func ContactSheet(maps []*PixelMap, titles []string) (*image.RGBA, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("contact sheet: no images: %w", ErrInvalidState)
	}
	for i, p := range maps {
		if err := p.valid(fmt.Sprintf("contact sheet image %d", i+1)); err != nil {
			return nil, err
		}
	}
	titles = Titles(len(maps), titles)

	cols, rows := GridSize(len(maps))
	cellW := panelSize + panelGap
	cellH := panelSize + titleHeight + panelGap
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cellW+panelGap, rows*cellH+panelGap))
	draw.Draw(sheet, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  sheet,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	border := image.NewUniform(color.Gray{200})

	for i, p := range maps {
		x0 := panelGap + (i%cols)*cellW
		y0 := panelGap + (i/cols)*cellH

		d.Dot = fixed.P(x0, y0+basicfont.Face7x13.Metrics().Ascent.Ceil())
		d.DrawString(titles[i])

		panel := image.Rect(x0, y0+titleHeight, x0+panelSize, y0+titleHeight+panelSize)
		draw.Draw(sheet, panel, border, image.Point{}, draw.Src)
		draw.Draw(sheet, panel.Inset(1), image.White, image.Point{}, draw.Src)
		inner := FitGeometry(p.Width(), p.Height(), panelSize-2, panelSize-2).Add(panel.Min.Add(image.Pt(1, 1)))
		draw.NearestNeighbor.Scale(sheet, inner, p.img, p.img.Bounds(), draw.Src, nil)
	}

	return sheet, nil
}
