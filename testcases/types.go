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

// Package testcases provides synthetic glyphs for testing and benchmarking
// the stroke fitter.
package testcases

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/strokefit"
)

// TestCase describes a glyph-like ink image.
type TestCase struct {
	Name        string    // lowercase a-z, 0-9 and _ only
	Shape       path.Path // the inked area, nil for a blank glyph
	Width       int       // grid width in pixels
	Height      int       // grid height in pixels
	Level       float64   // ink level inside the shape, zero means 1
	StrokeWidth float64   // stroke width to fit with, zero means 1
}

// Grid rasterizes the shape with the non-zero winding rule.
// Pixels partially covered by the shape receive a proportional amount
// of ink.
func (tc TestCase) Grid() strokefit.Grid {
	g := strokefit.NewGrid(tc.Width, tc.Height)
	if tc.Shape == nil {
		return g
	}

	z := vector.NewRasterizer(tc.Width, tc.Height)
	z.DrawOp = draw.Src
	for cmd, pts := range tc.Shape {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(f32(pts[0]))
		case path.CmdLineTo:
			z.LineTo(f32(pts[0]))
		case path.CmdQuadTo:
			cx, cy := f32(pts[0])
			x, y := f32(pts[1])
			z.QuadTo(cx, cy, x, y)
		case path.CmdCubeTo:
			c1x, c1y := f32(pts[0])
			c2x, c2y := f32(pts[1])
			x, y := f32(pts[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case path.CmdClose:
			z.ClosePath()
		}
	}
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	level := tc.Level
	if level == 0 {
		level = 1
	}
	for y := range tc.Height {
		row := mask.Pix[y*mask.Stride:]
		for x := range tc.Width {
			g.Ink[x+tc.Width*y] = level * float64(row[x]) / 255
		}
	}
	return g
}

func f32(p vec.Vec2) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
