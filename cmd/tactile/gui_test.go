// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"testing"

	"fyne.io/fyne/v2/test"
	"rescribe.xyz/tactile"
)

func TestPreviewContent(t *testing.T) {
	_ = test.NewApp()

	for _, n := range []int{1, 3, 4, 5, 9} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			var maps []*tactile.PixelMap
			for i := 0; i < n; i++ {
				maps = append(maps, tactile.NewPixelMap(tactile.Bilevel, 10+i, 10))
			}
			c, err := previewContent(maps, nil)
			if err != nil {
				t.Fatalf("Error making preview: %v", err)
			}
			if len(c.Objects) != n {
				t.Fatalf("Expected %d panels, got %d", n, len(c.Objects))
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := previewContent(nil, nil)
		if !errors.Is(err, tactile.ErrInvalidState) {
			t.Fatalf("Expected ErrInvalidState, got %v", err)
		}
	})
}
