// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"rescribe.xyz/tactile"
)

const panelSize = 256

// previewContent lays out each map with its title above it, in a
// grid of at most tactile.MaxColumns columns
func previewContent(maps []*tactile.PixelMap, titles []string) (*fyne.Container, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("No images to show: %w", tactile.ErrInvalidState)
	}
	cols, _ := tactile.GridSize(len(maps))
	titles = tactile.Titles(len(maps), titles)

	grid := container.NewGridWithColumns(cols)
	for i, m := range maps {
		if m == nil {
			return nil, fmt.Errorf("Image %d is missing: %w", i+1, tactile.ErrInvalidState)
		}
		img := canvas.NewImageFromImage(m.Image())
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScalePixels
		img.SetMinSize(fyne.NewSize(panelSize, panelSize))

		label := widget.NewLabel(titles[i])
		label.Alignment = fyne.TextAlignCenter

		grid.Add(container.NewBorder(label, nil, nil, nil, img))
	}
	return grid, nil
}

// startGui shows the stages of a conversion in a window, returning
// once it is closed
func startGui(src string, maps []*tactile.PixelMap, titles []string) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Tactile preview: " + filepath.Base(src))

	content, err := previewContent(maps, titles)
	if err != nil {
		return err
	}

	myWindow.SetContent(container.NewVScroll(content))
	myWindow.ShowAndRun()
	return nil
}
