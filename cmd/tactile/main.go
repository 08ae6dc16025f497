// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// tactile converts an image or document into a dot matrix for a
// tactile display, printing it using Braille dot glyphs.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"rescribe.xyz/tactile"
	"rescribe.xyz/tactile/internal/pipeline"
)

const usage = `Usage: tactile [-v] [-width n] [-height n] [-t threshold] [-bt bintype] [-o out] [-sheet sheet.png] [-pdf proof.pdf] [-gui] source

Converts an image (png, jpeg, gif, bmp, tiff, webp) or a document
(pdf, txt, hocr) into a dot matrix for a tactile display, and prints
it using Braille dot glyphs.

If source is a directory, every image and document in it is
converted, and the results for each are saved into the directory
given by -o.

Settings are read from %s if it exists, and
can be overridden by the flags below.
`

// settingKeys maps flags to the settings they override
var settingKeys = map[string]string{
	"width":  "width",
	"height": "height",
	"t":      "threshold",
	"bt":     "binarizer",
	"k":      "sauvolak",
	"bw":     "sauvolawindow",
	"pw":     "pagewidth",
	"ph":     "pageheight",
	"fs":     "fontsize",
	"font":   "font",
}

// applyFlags overrides s with any setting flags that were set explicitly
func applyFlags(s *tactile.Settings) error {
	var err error
	flag.Visit(func(fl *flag.Flag) {
		key, ok := settingKeys[fl.Name]
		if !ok || err != nil {
			return
		}
		err = s.Set(key, fl.Value.String())
	})
	return err
}

func main() {
	d := tactile.DefaultSettings
	verbose := flag.Bool("v", false, "verbose")
	settings := flag.String("settings", tactile.SettingsPath(), "settings file")
	out := flag.String("o", "", "save the final image, Braille text and dot proof as out.png, out.txt and out.pdf (or into directory out, for a directory source)")
	sheet := flag.String("sheet", "", "save a contact sheet of each stage of conversion to this png file")
	proof := flag.String("pdf", "", "save a printable dot proof to this pdf file")
	gui := flag.Bool("gui", false, "show each stage of conversion in a window")
	flag.Int("width", d.Width, "width of the display, in dots")
	flag.Int("height", d.Height, "height of the display, in dots")
	flag.Int("t", d.Threshold, "luminance threshold (0-255); pixels at or below it become dots")
	flag.String("bt", d.Binarizer, "binarization type: threshold, sauvola or dither")
	flag.Float64("k", d.SauvolaK, "k for sauvola binarization. Set it lower for very light text (try 0.1 or 0.2).")
	flag.Int("bw", d.SauvolaWindow, "window size for sauvola binarization. Set automatically based on resolution if 0.")
	flag.Int("pw", d.PageWidth, "width of the page documents are drawn on")
	flag.Int("ph", d.PageHeight, "height of the page documents are drawn on")
	flag.Int("fs", d.FontSize, "font size documents are drawn with")
	flag.String("font", d.Font, "TrueType font documents are drawn with; the built in font is used if it can't be found")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, tactile.SettingsPath())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stderr, "", 0)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	}

	s, err := tactile.LoadSettings(*settings)
	if err != nil {
		log.Fatalln(err)
	}
	err = applyFlags(&s)
	if err != nil {
		log.Fatalln("Error in flags:", err)
	}

	src := flag.Arg(0)
	info, err := os.Stat(src)
	if err == nil && info.IsDir() {
		if *out == "" {
			log.Fatalln("An output directory must be given with -o to convert a directory")
		}
		n, err := pipeline.ConvertDir(src, *out, s, verboselog)
		if err != nil {
			log.Fatalln(err)
		}
		verboselog.Printf("Converted %d files into %s\n", n, *out)
		return
	}

	r, err := pipeline.Convert(src, s, verboselog)
	if err != nil {
		log.Fatalln("Error converting", src, err)
	}

	fmt.Println(r.Matrix.Braille())

	if *out != "" {
		err = pipeline.Save(r, *out)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if *proof != "" {
		pf, err := os.Create(*proof)
		if err != nil {
			log.Fatalln("Error creating file", *proof, err)
		}
		defer pf.Close()
		err = tactile.Proof(r.Matrix, pf)
		if err != nil {
			log.Fatalln("Error writing proof", err)
		}
	}

	maps, names := r.Maps()

	if *sheet != "" {
		img, err := tactile.ContactSheet(maps, names)
		if err != nil {
			log.Fatalln("Error making contact sheet", err)
		}
		sf, err := os.Create(*sheet)
		if err != nil {
			log.Fatalln("Error creating file", *sheet, err)
		}
		defer sf.Close()
		err = png.Encode(sf, img)
		if err != nil {
			log.Fatalln("Error encoding contact sheet", err)
		}
	}

	if *gui {
		err = startGui(src, maps, names)
		if err != nil {
			log.Fatalln("Error showing preview", err)
		}
	}
}
