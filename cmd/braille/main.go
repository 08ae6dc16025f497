// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// braille transliterates text into grade 1 Braille glyphs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"rescribe.xyz/tactile"
)

const usage = `Usage: braille [text...]

Transliterates text into grade 1 Braille glyphs, one character at a
time. Letters are lowercased first, and anything without a glyph is
written as ?.

If no text is given as arguments, each line of standard input is
transliterated in turn.
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Println(tactile.Translate(strings.Join(flag.Args(), " ")))
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(tactile.Translate(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatalln("Error reading standard input", err)
	}
}
