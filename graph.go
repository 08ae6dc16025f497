// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const xticknum = 16

// Luminances counts how many pixels of p have each luminance value
func Luminances(p *PixelMap) ([256]int, error) {
	var counts [256]int
	if err := p.valid("histogram"); err != nil {
		return counts, err
	}
	for _, v := range p.gray().Pix {
		counts[v]++
	}
	return counts, nil
}

// createLine creates a vertical line at a particular x value,
// reaching from 0 to top
func createLine(x float64, top float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("threshold %.0f", x),
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeWidth:     3,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// Histogram draws a graph of the luminance of every pixel in p, with
// a line marking threshold, and writes it to w as a PNG. Everything
// to the left of the line will become ink.
func Histogram(p *PixelMap, threshold int, title string, w io.Writer) error {
	counts, err := Luminances(p)
	if err != nil {
		return err
	}

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var top float64
	for i, c := range counts {
		xvalues = append(xvalues, float64(i))
		yvalues = append(yvalues, float64(c))
		if float64(c) > top {
			top = float64(c)
		}
		if i%xticknum == 0 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
		}
	}
	ticks = append(ticks, chart.Tick{Value: 255, Label: "255"})

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Luminance",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: top,
			},
		},
		Series: []chart.Series{
			mainSeries,
			createLine(float64(threshold), top, chart.ColorRed),
		},
	}
	return graph.Render(chart.PNG, w)
}
