// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The tactile package contains tools and functions for turning page images and
simple documents into low resolution dot matrices, suitable for driving
refreshable tactile (Braille pin) displays. It also contains a few tools that
are useful standalone; all of them give information on what they do with the
'-h' flag.

Introduction

A tactile display has very few "pixels" compared to a screen, often a grid of
a hundred or so pins in each direction, each of which is either raised or
lowered. Getting something recognisable onto such a display is mostly a
question of reducing an image carefully: converting it to pure black and
white, scaling it down without distorting it, and finally reading off which
pins should be raised.

The tactile command does this in one step:
  tactile -width 100 -height 100 page.png

Images and documents

Raster images (png, jpeg, gif, bmp, tiff, webp) are binarised first and then
scaled to fit the display. Documents (pdf, txt, and hOCR as produced by
tesseract) have their text extracted, which is then word wrapped and drawn
onto a large synthetic page, before being scaled and binarised in the same
way. Text that does not fit on the synthetic page is dropped; use a larger
page (-pw, -ph) or a smaller font (-fs) to get more of it.

Ink is always black: a pixel is ink when its luminance is at or below the
threshold, and background otherwise. The luminance weighting is the usual
ITU-R BT.601 one, 0.299 R + 0.587 G + 0.114 B, applied after flattening any
transparency onto white.

Binarisation

Three binarisers are available. The default is a single global threshold,
which is predictable and works well for clean scans and rendered text. For
uneven lighting the adaptive Sauvola method (-bt sauvola) tends to do much
better, and for photographs dithering (-bt dither) keeps more of the tone.

Braille text

Separately, the braille command transliterates text letter by letter into
Braille Unicode glyphs. This is deliberately naive; it does not apply any
contractions, and anything other than a letter or space comes out as '?'.

Previews

As a tactile display is not always to hand, the tactile command can show its
intermediate images in a window (-gui), save them as one contact sheet
(-sheet), or save a printable dot proof as a PDF (-pdf). The final matrix is
always printed using Braille dot glyphs, which gives a rough idea of it in a
terminal. The lumgraph command draws a histogram
of an image's luminance, which helps in choosing a threshold.
*/
package tactile
