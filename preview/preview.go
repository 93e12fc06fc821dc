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

// Package preview renders fitted strokes and ink grids as images, for
// visual inspection of the stroke fitter's results.
package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/strokefit"
)

// flatness is the maximal deviation of the polygonal cap outline from
// the exact circle, in pixels.
const flatness = 0.05

// Renderer draws strokes with round caps.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Width is the stroke width in pixels.  Must be positive.
	Width float64

	z       *vector.Rasterizer
	clip    rect.Rect
	outline []vec.Vec2
}

// NewRenderer returns a Renderer for width×height images and stroke
// width 1.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width: 1,
		z:     vector.NewRasterizer(width, height),
		clip:  rect.Rect{URx: float64(width), URy: float64(height)},
	}
}

// Render draws the strokes, given in normalized coordinates, into a new
// coverage image.
func (r *Renderer) Render(strokes [][4]float64) *image.Alpha {
	w, h := int(r.clip.URx), int(r.clip.URy)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	for _, n := range strokes {
		r.Draw(dst, strokefit.Denormalize(n, w, h))
	}
	return dst
}

// Draw adds a single stroke, given in pixel coordinates, to dst.
func (r *Renderer) Draw(dst *image.Alpha, s strokefit.Stroke) {
	r.capsule(s)
	if len(r.outline) < 3 {
		return
	}

	r.z.Reset(int(r.clip.URx), int(r.clip.URy))
	r.z.DrawOp = draw.Over
	// The vector rasterizer clips to its bounds on its own.
	for i, p := range r.outline {
		x, y := float32(p.X), float32(p.Y)
		if i == 0 {
			r.z.MoveTo(x, y)
		} else {
			r.z.LineTo(x, y)
		}
	}
	r.z.ClosePath()
	r.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

// capsule builds the outline of the stroke into r.outline: the segment
// offset to both sides by half the stroke width, joined by half circles.
// Degenerate strokes become a full circle.
func (r *Renderer) capsule(s strokefit.Stroke) {
	r.outline = r.outline[:0]
	radius := r.Width / 2
	if !(radius > 0) {
		return
	}

	d := s.B.Sub(s.A)
	length := d.Length()
	if length == 0 {
		r.addArc(s.A, radius, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.addArc(s.B, radius, n, -math.Pi)
	r.addArc(s.A, radius, n.Mul(-1), -math.Pi)
}

// addArc appends points on the circle around center, starting in
// direction startDir and sweeping by the given angle.
func (r *Renderer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	step := 2 * math.Acos(1-min(flatness/radius, 1))
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 2)
	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// Render draws normalized strokes of the given width into a new
// width×height coverage image.
func Render(strokes [][4]float64, width, height int, strokeWidth float64) *image.Alpha {
	r := NewRenderer(width, height)
	r.Width = strokeWidth
	return r.Render(strokes)
}

// Ink converts an ink grid into a coverage image.
func Ink(g strokefit.Grid) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		row := dst.Pix[y*dst.Stride:]
		for x := range g.Width {
			v := min(max(g.Ink[x+g.Width*y], 0), 1)
			row[x] = uint8(math.Round(v * 255))
		}
	}
	return dst
}
