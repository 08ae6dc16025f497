// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rescribe.xyz/tactile"
)

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type fileWalk []string

// Walk records the path of every file that is in a format we can
// convert, with the exception of any file which starts with "."
func (f *fileWalk) Walk(path string, info os.FileInfo, err error) error {
	if err != nil {
		return err
	}
	// skip files starting with . to prevent automatically generated
	// files like .DS_Store getting in the way
	if strings.HasPrefix(filepath.Base(path), ".") {
		if info.IsDir() && path != "." {
			return filepath.SkipDir
		}
		return nil
	}
	if info.IsDir() {
		return nil
	}
	if _, err := tactile.DetectFormat(path); err != nil {
		return nil
	}
	*f = append(*f, path)
	return nil
}

// Sources finds all convertible files in a directory, recursively
// (skipping dotfiles), sorted by path
func Sources(dir string) ([]string, error) {
	var found fileWalk
	err := filepath.Walk(dir, found.Walk)
	if err != nil {
		return nil, fmt.Errorf("Failed to walk %s: %v", dir, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("No images or documents found in %s", dir)
	}
	sort.Strings(found)
	return found, nil
}

// Save writes out the results of a conversion: base.png with the
// final image, base.txt with the matrix drawn in Braille dots, and
// base.pdf with a printable dot proof.
func Save(r Result, base string) error {
	fn := base + ".png"
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("Error creating file %s: %v", fn, err)
	}
	defer f.Close()
	err = png.Encode(f, r.Final().Image())
	if err != nil {
		return fmt.Errorf("Error encoding image %s: %v", fn, err)
	}

	fn = base + ".txt"
	err = os.WriteFile(fn, []byte(r.Matrix.Braille()+"\n"), 0644)
	if err != nil {
		return fmt.Errorf("Error writing file %s: %v", fn, err)
	}

	fn = base + ".pdf"
	pf, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("Error creating file %s: %v", fn, err)
	}
	defer pf.Close()
	err = tactile.Proof(r.Matrix, pf)
	if err != nil {
		return fmt.Errorf("Error writing proof %s: %v", fn, err)
	}
	return nil
}

// ConvertDir converts every source found in dir, saving the results
// for each in outdir, named after the source file and its extension,
// so page.png and page.txt become page_png and page_txt. It stops at the
// first failure, returning how many were converted before it.
func ConvertDir(dir string, outdir string, s tactile.Settings, logger *log.Logger) (int, error) {
	paths, err := Sources(dir)
	if err != nil {
		return 0, err
	}
	err = os.MkdirAll(outdir, 0755)
	if err != nil {
		return 0, fmt.Errorf("Error creating directory %s: %v", outdir, err)
	}

	n := 0
	for _, p := range paths {
		r, err := Convert(p, s, logger)
		if err != nil {
			return n, fmt.Errorf("Error converting %s: %w", p, err)
		}
		ext := filepath.Ext(p)
		name := strings.TrimSuffix(filepath.Base(p), ext) + "_" + strings.TrimPrefix(ext, ".")
		base := filepath.Join(outdir, name)
		logger.Println("Saving", base)
		err = Save(r, base)
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
