// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"strings"
	"unicode"
)

// Unknown is written in place of any character without a glyph
const Unknown = '?'

// glyphs is the grade 1 Braille cell for each lowercase letter, plus
// space. It must never be modified.
var glyphs = map[rune]rune{
	'a': '⠁', 'b': '⠃', 'c': '⠉', 'd': '⠙', 'e': '⠑',
	'f': '⠋', 'g': '⠛', 'h': '⠓', 'i': '⠊', 'j': '⠚',
	'k': '⠅', 'l': '⠇', 'm': '⠍', 'n': '⠝', 'o': '⠕',
	'p': '⠏', 'q': '⠟', 'r': '⠗', 's': '⠎', 't': '⠞',
	'u': '⠥', 'v': '⠧', 'w': '⠺', 'x': '⠭', 'y': '⠽',
	'z': '⠵', ' ': '⠶',
}

// Glyph returns the Braille glyph for r, which should already be
// lowercase, and whether there is one.
func Glyph(r rune) (rune, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// Translate converts text to Braille glyphs one character at a time,
// after lowercasing. Characters with no glyph, such as digits and
// punctuation, become Unknown, so the output always has exactly as
// many characters as the input.
func Translate(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 3)
	for _, r := range text {
		g, ok := Glyph(unicode.ToLower(r))
		if !ok {
			g = Unknown
		}
		sb.WriteRune(g)
	}
	return sb.String()
}
