// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the tactile command, which runs a
// source file through each stage of conversion in turn. Note that it
// is considered an "internal" package, not intended for external use,
// and no guarantee is made of the stability of any interfaces
// provided.
package pipeline

import (
	"fmt"
	"log"

	"rescribe.xyz/tactile"
)

// Stage is an intermediate image produced during a conversion
type Stage struct {
	Name string
	Map  *tactile.PixelMap
}

// Result holds everything produced by converting one source
type Result struct {
	Format    tactile.Format
	Text      string // extracted text, for documents only
	Truncated bool   // whether text was dropped for not fitting the page
	Stages    []Stage
	Matrix    tactile.BoolMatrix
}

// Final returns the last stage, which the matrix was read from
func (r Result) Final() *tactile.PixelMap {
	if len(r.Stages) == 0 {
		return nil
	}
	return r.Stages[len(r.Stages)-1].Map
}

// Maps returns the image and name of each stage, in order, as
// needed for showing them with tactile.ContactSheet
func (r Result) Maps() ([]*tactile.PixelMap, []string) {
	var maps []*tactile.PixelMap
	var names []string
	for _, s := range r.Stages {
		maps = append(maps, s.Map)
		names = append(names, s.Name)
	}
	return maps, names
}

// Binarize converts p to Bilevel with the binarizer named in s
func Binarize(p *tactile.PixelMap, s tactile.Settings) (*tactile.PixelMap, error) {
	switch s.Binarizer {
	case "", "threshold":
		return tactile.ToBilevel(p, s.Threshold)
	case "sauvola":
		return tactile.ToBilevelSauvola(p, s.SauvolaK, s.SauvolaWindow)
	case "dither":
		return tactile.Dither(p)
	}
	return nil, fmt.Errorf("Unknown binarizer %s", s.Binarizer)
}

// Convert turns the image or document at path into a dot matrix,
// following the settings s.
//
// Images are binarized first and then fitted to the display, so
// binarization works at full resolution. Documents have their text
// drawn on a page, which is fitted to the display before being
// binarized, so that the antialiasing of downscaling still counts
// towards which dots are raised.
func Convert(path string, s tactile.Settings, logger *log.Logger) (Result, error) {
	var r Result

	f, err := tactile.Detect(path)
	if err != nil {
		return r, err
	}
	r.Format = f

	switch {
	case f == tactile.FormatImage:
		err = convertImage(path, s, logger, &r)
	case f.IsDocument():
		err = convertDocument(path, s, logger, &r)
	default:
		err = fmt.Errorf("No conversion for %s files", f)
	}
	if err != nil {
		return r, err
	}

	logger.Println("Extracting matrix")
	r.Matrix, err = tactile.ToMatrix(r.Final())
	if err != nil {
		return r, fmt.Errorf("Error extracting matrix: %w", err)
	}
	logger.Printf("Matrix is %dx%d with %d raised dots\n", r.Matrix.Width(), r.Matrix.Height(), r.Matrix.Count())
	return r, nil
}

func convertImage(path string, s tactile.Settings, logger *log.Logger, r *Result) error {
	logger.Println("Loading image", path)
	orig, err := tactile.LoadImage(path)
	if err != nil {
		return err
	}
	r.Stages = append(r.Stages, Stage{"Original", orig})

	logger.Println("Binarizing with", s.Binarizer)
	bin, err := Binarize(orig, s)
	if err != nil {
		return fmt.Errorf("Error binarizing %s: %w", path, err)
	}
	r.Stages = append(r.Stages, Stage{"Binarized", bin})

	logger.Printf("Fitting to %dx%d\n", s.Width, s.Height)
	fitted, err := tactile.Fit(bin, s.Width, s.Height)
	if err != nil {
		return fmt.Errorf("Error fitting %s: %w", path, err)
	}
	r.Stages = append(r.Stages, Stage{"Fitted", fitted})
	return nil
}

func convertDocument(path string, s tactile.Settings, logger *log.Logger, r *Result) error {
	logger.Println("Extracting text from", path)
	text, err := tactile.LoadDocument(path)
	if err != nil {
		return err
	}
	r.Text = text

	face, found := tactile.LoadFace(s.Font, float64(s.FontSize))
	if !found {
		logger.Printf("Font %s not found, using the built in font\n", s.Font)
	}
	defer face.Close()

	_, r.Truncated, err = tactile.Layout(text, s.PageWidth, s.PageHeight, s.FontSize, tactile.FaceMeasurer{Face: face})
	if err != nil {
		return fmt.Errorf("Error laying out text of %s: %w", path, err)
	}
	if r.Truncated {
		logger.Println("Text does not all fit on the page, so the end has been dropped")
	}

	logger.Printf("Drawing text on a %dx%d page\n", s.PageWidth, s.PageHeight)
	page, err := tactile.Rasterize(text, s.PageWidth, s.PageHeight, s.FontSize, face)
	if err != nil {
		return fmt.Errorf("Error drawing text of %s: %w", path, err)
	}
	r.Stages = append(r.Stages, Stage{"Page", page})

	logger.Printf("Fitting to %dx%d\n", s.Width, s.Height)
	fitted, err := tactile.Fit(page, s.Width, s.Height)
	if err != nil {
		return fmt.Errorf("Error fitting %s: %w", path, err)
	}
	r.Stages = append(r.Stages, Stage{"Fitted", fitted})

	logger.Println("Binarizing with", s.Binarizer)
	bin, err := Binarize(fitted, s)
	if err != nil {
		return fmt.Errorf("Error binarizing %s: %w", path, err)
	}
	r.Stages = append(r.Stages, Stage{"Binarized", bin})
	return nil
}
