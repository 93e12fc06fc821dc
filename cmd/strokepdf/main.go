// seehuhn.de/go/strokefit - approximate glyphs by straight strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Strokepdf writes a PDF proof sheet which shows the glyphs of a font
// together with their stroke approximations.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/strokefit"
	"seehuhn.de/go/strokefit/glyph"
)

var (
	out         = flag.String("o", "strokes.pdf", "output file")
	fontFile    = flag.String("font", "", "TrueType or OpenType font file")
	chars       = flag.String("chars", glyph.ASCII, "characters to show")
	width       = flag.Int("width", 12, "glyph width in pixels")
	height      = flag.Int("height", 18, "glyph height in pixels")
	strokeWidth = flag.Float64("stroke-width", 1, "stroke width in pixels")
	scale       = flag.Float64("scale", 2, "size of one pixel in points")
	cols        = flag.Int("cols", 16, "glyphs per row")
)

const margin = 8 // points

type cell struct {
	grid strokefit.Grid
	res  *strokefit.Result
}

func main() {
	log.SetPrefix("strokepdf: ")
	log.SetFlags(0)
	flag.Parse()

	if *width <= 0 || *height <= 0 || *cols <= 0 || !(*scale > 0) {
		log.Fatal("invalid layout parameters")
	}

	font, err := glyph.Default()
	if *fontFile != "" {
		var data []byte
		data, err = os.ReadFile(*fontFile)
		if err == nil {
			font, err = glyph.New(data)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	opt := strokefit.DefaultFitOptions()
	opt.StrokeWidth = *strokeWidth

	ctx := context.Background()
	var cells []cell
	for _, ch := range *chars {
		g, err := font.Rasterize(ch, *width, *height)
		if err != nil {
			log.Printf("skipping %q: %v", ch, err)
			continue
		}
		res, err := strokefit.Fit(ctx, g, opt)
		if err != nil {
			log.Fatalf("%q: %v", ch, err)
		}
		cells = append(cells, cell{grid: g, res: res})
	}

	if err := writePDF(*out, cells); err != nil {
		log.Fatal(err)
	}
}

func writePDF(fname string, cells []cell) error {
	sc := *scale
	cellW := float64(*width) * sc
	cellH := float64(*height) * sc
	nCols := min(*cols, max(len(cells), 1))
	nRows := max((len(cells)+nCols-1)/nCols, 1)
	pageW := float64(nCols)*(cellW+margin) + margin
	pageH := float64(nRows)*(cellH+margin) + margin

	paper := &pdf.Rectangle{URx: pageW, URy: pageH}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; glyph grids use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageH})

	for i, c := range cells {
		x0 := margin + float64(i%nCols)*(cellW+margin)
		y0 := margin + float64(i/nCols)*(cellH+margin)

		// glyph ink, lightly shaded
		for y := range c.grid.Height {
			for x := range c.grid.Width {
				v := c.grid.Ink[x+c.grid.Width*y]
				if v <= 0 {
					continue
				}
				page.SetFillColor(color.DeviceGray(1 - 0.3*v))
				page.Rectangle(x0+float64(x)*sc, y0+float64(y)*sc, sc, sc)
				page.Fill()
			}
		}

		// cell border
		page.SetStrokeColor(color.DeviceGray(0.8))
		page.SetLineWidth(0.5)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.Rectangle(x0, y0, cellW, cellH)
		page.Stroke()

		if len(c.res.PixelStrokes) == 0 {
			continue
		}
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(*strokeWidth * sc)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, s := range c.res.PixelStrokes {
			page.MoveTo(x0+s.A.X*sc, y0+s.A.Y*sc)
			page.LineTo(x0+s.B.X*sc, y0+s.B.Y*sc)
		}
		page.Stroke()
	}

	return page.Close()
}
