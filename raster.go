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

package strokefit

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Stroke is a straight line segment in pixel coordinates.
// The pixel (x, y) covers the square [x, x+1) × [y, y+1).
// A stroke with A == B is degenerate but valid.
type Stroke struct {
	A, B vec.Vec2
}

// IsDegenerate reports whether the stroke has zero length.
func (s Stroke) IsDegenerate() bool {
	return s.A == s.B
}

// Normalized maps the stroke end points to coordinates relative to the
// centre of a width×height grid, in units of the grid size.  The result is
// {x0, y0, x1, y1}, with the grid covering [-0.5, 0.5) on both axes.
func (s Stroke) Normalized(width, height int) [4]float64 {
	w, h := float64(width), float64(height)
	return [4]float64{
		s.A.X/w - 0.5, s.A.Y/h - 0.5,
		s.B.X/w - 0.5, s.B.Y/h - 0.5,
	}
}

// Denormalize is the inverse of [Stroke.Normalized].
func Denormalize(n [4]float64, width, height int) Stroke {
	w, h := float64(width), float64(height)
	return Stroke{
		A: vec.Vec2{X: (n[0] + 0.5) * w, Y: (n[1] + 0.5) * h},
		B: vec.Vec2{X: (n[2] + 0.5) * w, Y: (n[3] + 0.5) * h},
	}
}

func (s Stroke) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Rasterizer enumerates the pixels which may be touched by a stroke.
//
// The enumeration over-approximates the footprint of the thick line: the
// caller is expected to compute the actual coverage for every visited pixel.
// Each pixel is visited at most once per call.  Internal buffers are reused
// between calls.
//
// A Rasterizer is not safe for concurrent use, and Visit must not be called
// again from within a visitor.
type Rasterizer struct {
	// Width is the stroke width in pixels.  Must be positive.
	Width float64

	clip   rect.Rect
	stride int

	seen   []bool // scratch bitmap, all false between calls
	pixels []int  // pixel indices collected by the current call
}

// NewRasterizer returns a Rasterizer for a width×height grid and stroke
// width 1.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		Width:  1,
		clip:   rect.Rect{URx: float64(width), URy: float64(height)},
		stride: width,
		seen:   make([]bool, width*height),
	}
}

// Visit calls visit(x, y, idx) for the pixels near the stroke, where
// idx = x + width*y.  Iteration stops early if visit returns false.
// An error wrapping [ErrNaN] is returned if a stroke coordinate is NaN or
// infinite; in this case visit is not called.  Strokes may extend far
// beyond the grid; only the part near the grid is walked.
//
// The cursor walks from A towards B in unit steps.  At every cursor
// position, and once more at B, the pixel under the cursor and the pixels
// offset by ±(k+0.5) along the normal, for k = 0, ..., ceil(Width)-1, are
// collected.
func (r *Rasterizer) Visit(s Stroke, visit func(x, y, idx int) bool) error {
	r.pixels = r.pixels[:0]
	err := r.collect(s)
	for _, idx := range r.pixels {
		r.seen[idx] = false
	}
	if err != nil {
		return err
	}

	for _, idx := range r.pixels {
		if !visit(idx%r.stride, idx/r.stride, idx) {
			break
		}
	}
	return nil
}

func (r *Rasterizer) collect(s Stroke) error {
	for _, v := range [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: stroke %s", ErrNaN, s)
		}
	}

	d := s.B.Sub(s.A)
	if d.X == 0 && d.Y == 0 {
		return r.add(s.A)
	}

	length := d.Length()
	unit := vec.Vec2{X: d.X / length, Y: d.Y / length}
	normal := vec.Vec2{X: unit.Y, Y: -unit.X}
	reps := max(int(math.Ceil(r.Width)), 1)

	mark := func(p vec.Vec2) error {
		if err := r.add(p); err != nil {
			return err
		}
		for k := range reps {
			off := normal.Mul(float64(k) + 0.5)
			if err := r.add(p.Add(off)); err != nil {
				return err
			}
			if err := r.add(p.Sub(off)); err != nil {
				return err
			}
		}
		return nil
	}

	// Cursor positions farther than reps+1 from the grid cannot mark any
	// pixel, so only the steps inside the enlarged box are walked.
	margin := float64(reps + 1)
	box := rect.Rect{
		LLx: r.clip.LLx - margin,
		LLy: r.clip.LLy - margin,
		URx: r.clip.URx + margin,
		URy: r.clip.URy + margin,
	}
	t0, t1, ok := clipSegment(s.A, d, box)
	if ok {
		first := math.Floor(t0 * length)
		last := math.Ceil(t1 * length)

		pos := s.A
		if first > 0 {
			pos = s.A.Add(unit.Mul(first))
		}
		// The loop runs while the cursor has not yet passed B along at
		// least one axis.  Checking the axes separately makes the test
		// work for horizontal and vertical strokes.
		for step := first; step <= last; step++ {
			if err := mark(pos); err != nil {
				return err
			}
			pos = pos.Add(unit)
			if (s.B.X-pos.X)*d.X <= 0 && (s.B.Y-pos.Y)*d.Y <= 0 {
				break
			}
		}
	}
	return mark(s.B)
}

// clipSegment returns the parameter range [t0, t1] within [0, 1] for which
// a+t*d lies inside box.  The result is false if the segment misses the box.
func clipSegment(a, d vec.Vec2, box rect.Rect) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		return t0 <= t1
	}
	ok = clip(-d.X, a.X-box.LLx) && clip(d.X, box.URx-a.X) &&
		clip(-d.Y, a.Y-box.LLy) && clip(d.Y, box.URy-a.Y)
	return t0, t1, ok
}

// add records the pixel containing p, if it lies inside the grid.
func (r *Rasterizer) add(p vec.Vec2) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return fmt.Errorf("%w: pixel coordinate (%g,%g)", ErrNaN, p.X, p.Y)
	}
	fx := math.Floor(p.X)
	fy := math.Floor(p.Y)
	if fx < r.clip.LLx || fx >= r.clip.URx || fy < r.clip.LLy || fy >= r.clip.URy {
		return nil
	}
	idx := int(fx) + r.stride*int(fy)
	if r.seen[idx] {
		return nil
	}
	r.seen[idx] = true
	r.pixels = append(r.pixels, idx)
	return nil
}
