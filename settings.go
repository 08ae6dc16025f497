// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Settings control the conversion of a source into a dot matrix
type Settings struct {
	Width, Height         int     // display size, in dots
	Threshold             int     // luminance at or below which a pixel is ink
	Binarizer             string  // "threshold", "sauvola" or "dither"
	SauvolaK              float64 // k for sauvola binarization
	SauvolaWindow         int     // window size for sauvola; 0 sets it automatically
	PageWidth, PageHeight int     // size of the page text is drawn on
	FontSize              int     // font size for drawing text, in pixels
	Font                  string  // TrueType font to draw text with
}

// DefaultSettings suit a 100x100 pin display
var DefaultSettings = Settings{
	Width:         100,
	Height:        100,
	Threshold:     128,
	Binarizer:     "threshold",
	SauvolaK:      0.5,
	SauvolaWindow: 0,
	PageWidth:     800,
	PageHeight:    1000,
	FontSize:      20,
	Font:          "arial.ttf",
}

// SettingsPath is where the settings file is looked for by default
func SettingsPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tactile", "settings")
}

// LoadSettings starts from DefaultSettings and applies any found in
// the file at path. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("Error reading settings from %s: %v", path, err)
	}
	defer f.Close()
	err = s.Parse(f)
	if err != nil {
		return s, fmt.Errorf("Error parsing settings from %s: %v", path, err)
	}
	return s, nil
}

// Parse reads settings, one "key value" pair per line, into s.
// Blank lines and lines starting with # are ignored.
func (s *Settings) Parse(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return fmt.Errorf("line %d: need %d fields, got %d", n, 2, len(f))
		}
		err := s.Set(f[0], f[1])
		if err != nil {
			return fmt.Errorf("line %d: %v", n, err)
		}
	}
	return sc.Err()
}

// Set changes the setting named key, as written in a settings file,
// to val.
func (s *Settings) Set(key, val string) error {
	var err error
	switch key {
	case "width":
		s.Width, err = strconv.Atoi(val)
	case "height":
		s.Height, err = strconv.Atoi(val)
	case "threshold":
		s.Threshold, err = strconv.Atoi(val)
	case "binarizer":
		s.Binarizer = val
	case "sauvolak":
		s.SauvolaK, err = strconv.ParseFloat(val, 64)
	case "sauvolawindow":
		s.SauvolaWindow, err = strconv.Atoi(val)
	case "pagewidth":
		s.PageWidth, err = strconv.Atoi(val)
	case "pageheight":
		s.PageHeight, err = strconv.Atoi(val)
	case "fontsize":
		s.FontSize, err = strconv.Atoi(val)
	case "font":
		s.Font = val
	default:
		return fmt.Errorf("unknown setting %s", key)
	}
	if err != nil {
		return fmt.Errorf("bad value for %s: %v", key, err)
	}
	return nil
}
