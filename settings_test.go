// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSettings(t *testing.T) {
	s := DefaultSettings
	err := s.Parse(strings.NewReader(`# display
width 40
height 32

threshold 100
binarizer sauvola
sauvolak 0.2
font /tmp/x.ttf
`))
	if err != nil {
		t.Fatalf("Error parsing settings: %v", err)
	}
	want := DefaultSettings
	want.Width = 40
	want.Height = 32
	want.Threshold = 100
	want.Binarizer = "sauvola"
	want.SauvolaK = 0.2
	want.Font = "/tmp/x.ttf"
	if s != want {
		t.Fatalf("Expected %+v, got %+v", want, s)
	}

	bad := []string{
		"width",
		"width forty",
		"colour red",
		"sauvolak x",
		"font two words",
	}
	for _, b := range bad {
		t.Run(b, func(t *testing.T) {
			s := DefaultSettings
			if err := s.Parse(strings.NewReader(b)); err == nil {
				t.Fatalf("Expected an error, got none")
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nosettings"))
	if err != nil {
		t.Fatalf("Expected a missing file to be fine, got %v", err)
	}
	if s != DefaultSettings {
		t.Fatalf("Expected default settings, got %+v", s)
	}

	fn := writeFile(t, "settings", []byte("fontsize 12\n"))
	s, err = LoadSettings(fn)
	if err != nil {
		t.Fatalf("Error loading settings: %v", err)
	}
	if s.FontSize != 12 || s.Width != DefaultSettings.Width {
		t.Fatalf("Unexpected settings %+v", s)
	}

	fn = writeFile(t, "badsettings", []byte("fontsize big\n"))
	_, err = LoadSettings(fn)
	if err == nil {
		t.Fatalf("Expected an error, got none")
	}
}
