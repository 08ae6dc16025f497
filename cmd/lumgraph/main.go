// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// lumgraph graphs the luminance of the pixels in an image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"rescribe.xyz/tactile"
)

const usage = `Usage: lumgraph [-t threshold] image graph.png

lumgraph creates a graph showing how many pixels of an image have
each luminance, with a line marking the threshold at or below which
pixels become raised dots. This can help in choosing a threshold.
`

func main() {
	threshold := flag.Int("t", tactile.DefaultSettings.Threshold, "threshold to mark on the graph")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	p, err := tactile.LoadImage(flag.Arg(0))
	if err != nil {
		log.Fatalln("Error loading image", flag.Arg(0), err)
	}

	fn := flag.Arg(1)
	f, err := os.Create(fn)
	if err != nil {
		log.Fatalln("Error creating file", fn, err)
	}
	defer f.Close()
	err = tactile.Histogram(p, *threshold, filepath.Base(flag.Arg(0)), f)
	if err != nil {
		log.Fatalln("Error creating graph", err)
	}
}
