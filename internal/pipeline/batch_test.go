// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rescribe.xyz/tactile"
)

func TestSources(t *testing.T) {
	dir := t.TempDir()
	err := os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	if err != nil {
		t.Fatalf("Error creating directory: %v", err)
	}
	err = os.MkdirAll(filepath.Join(dir, ".hidden"), 0755)
	if err != nil {
		t.Fatalf("Error creating directory: %v", err)
	}
	writeSquare(t, dir, "b.png", 10, 10, 2)
	writeText(t, dir, "a.txt", "hi")
	writeText(t, dir, ".DS_Store", "junk")
	writeText(t, dir, "notes.docx", "PK")
	writeText(t, filepath.Join(dir, "sub"), "c.txt", "hi")
	writeText(t, filepath.Join(dir, ".hidden"), "d.txt", "hi")

	got, err := Sources(dir)
	if err != nil {
		t.Fatalf("Error finding sources: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "sub", "c.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	_, err = Sources(filepath.Join(dir, ".hidden", "nothing"))
	if err == nil {
		t.Fatalf("Expected an error for a missing directory, got none")
	}
	empty := t.TempDir()
	_, err = Sources(empty)
	if err == nil {
		t.Fatalf("Expected an error for an empty directory, got none")
	}
}

func TestConvertDir(t *testing.T) {
	var slog StrLog
	vlog := log.New(&slog, "", 0)

	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeSquare(t, dir, "page.png", 60, 60, 20)
	writeText(t, dir, "page.txt", "Some text to show")

	s := tactile.DefaultSettings
	s.Font = ""
	n, err := ConvertDir(dir, out, s, vlog)
	if err != nil {
		t.Fatalf("Error converting directory: %v\nLog: %s", err, slog.log)
	}
	if n != 2 {
		t.Fatalf("Expected 2 conversions, got %d", n)
	}

	for _, base := range []string{"page_png", "page_txt"} {
		for _, ext := range []string{".png", ".txt", ".pdf"} {
			fn := filepath.Join(out, base+ext)
			info, err := os.Stat(fn)
			if err != nil {
				t.Fatalf("Expected %s to be saved: %v", fn, err)
			}
			if info.Size() == 0 {
				t.Fatalf("Expected %s to have something in it", fn)
			}
		}
	}

	b, err := os.ReadFile(filepath.Join(out, "page_png.txt"))
	if err != nil {
		t.Fatalf("Error reading saved Braille: %v", err)
	}
	// a 100x100 matrix is 25 lines of 50 cells
	if lines := bytes.Count(b, []byte("\n")); lines != 25 {
		t.Fatalf("Expected 25 lines of Braille, got %d", lines)
	}

	writeText(t, dir, "z.txt", "")
	_, err = ConvertDir(dir, out, s, vlog)
	if err == nil {
		t.Fatalf("Expected an error converting an empty document, got none")
	}
}
