// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"io"

	"github.com/nickjwhite/gofpdf"
)

// dotPitch is the distance between dot centres in pts; 2.5mm is
// the standard spacing of Braille dots.
const dotPitch = 2.5 * 72 / 25.4

const proofMargin = 36 // pts

// Proof writes a one page PDF showing m as a grid of dots, filled for
// ink and outlined otherwise, at real Braille spacing. Printed on
// swell paper this gives a usable tactile proof.
func Proof(m BoolMatrix, w io.Writer) error {
	if m.Width() == 0 || m.Height() == 0 {
		return fmt.Errorf("proof: matrix is empty: %w", ErrInvalidState)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{
		Wd: float64(m.Width())*dotPitch + 2*proofMargin,
		Ht: float64(m.Height())*dotPitch + 2*proofMargin,
	})
	pdf.SetFillColor(0, 0, 0)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)

	r := dotPitch * 0.3
	for y, row := range m {
		for x, v := range row {
			cx := proofMargin + (float64(x)+0.5)*dotPitch
			cy := proofMargin + (float64(y)+0.5)*dotPitch
			if v {
				pdf.Circle(cx, cy, r, "F")
			} else {
				pdf.Circle(cx, cy, r*0.5, "D")
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
