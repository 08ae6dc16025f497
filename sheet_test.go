// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestGridSize(t *testing.T) {
	cases := []struct {
		n, cols, rows int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{3, 3, 1},
		{4, 4, 1},
		{5, 4, 2},
		{8, 4, 2},
		{9, 4, 3},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.n), func(t *testing.T) {
			cols, rows := GridSize(c.n)
			if cols != c.cols || rows != c.rows {
				t.Fatalf("Expected %dx%d, got %dx%d", c.cols, c.rows, cols, rows)
			}
		})
	}
}

func TestTitles(t *testing.T) {
	got := Titles(3, []string{"Original", ""})
	want := []string{"Original", "Image 2", "Image 3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	got = Titles(1, []string{"a", "b"})
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("Expected extra titles to be dropped, got %v", got)
	}
}

func TestContactSheet(t *testing.T) {
	for _, n := range []int{1, 3, 4, 5} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			var maps []*PixelMap
			for i := 0; i < n; i++ {
				maps = append(maps, squareMap(40+i*10, 30, 10))
			}
			img, err := ContactSheet(maps, nil)
			if err != nil {
				t.Fatalf("Error making contact sheet: %v", err)
			}
			cols, rows := GridSize(n)
			w := cols*(panelSize+panelGap) + panelGap
			h := rows*(panelSize+titleHeight+panelGap) + panelGap
			if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
				t.Fatalf("Expected %dx%d, got %dx%d", w, h, img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}

	_, err := ContactSheet(nil, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
	_, err = ContactSheet([]*PixelMap{squareMap(5, 5, 1), nil}, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
}
