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

	"seehuhn.de/go/geom/vec"
)

// overdrawThreshold is the largest amount by which a stroke may exceed the
// glyph's ink at any single pixel.
const overdrawThreshold = 0.55

// Cover measures how much ink a candidate stroke would account for.
//
// New is the part of the still remaining ink covered by the stroke, Total
// the part of the original ink.  A Rejected cover belongs to a stroke which
// overdraws some pixel; New and Total are zero in this case.
type Cover struct {
	New      float64
	Total    float64
	Rejected bool
}

// Better reports whether c is strictly preferable to other.
// Covers are ordered by New, then by Total.  A rejected cover is never
// better than anything, and every legal cover is better than a rejected one.
func (c Cover) Better(other Cover) bool {
	if c.Rejected {
		return false
	}
	if other.Rejected {
		return true
	}
	return c.New > other.New || (c.New == other.New && c.Total > other.Total)
}

func (c Cover) String() string {
	if c.Rejected {
		return "rejected"
	}
	return fmt.Sprintf("new=%.4g total=%.4g", c.New, c.Total)
}

// Evaluator computes the [Cover] of candidate strokes against an ink field.
// It never modifies the field.
type Evaluator struct {
	ink    *InkField
	raster *Rasterizer
}

// NewEvaluator returns an evaluator for the given field.  The stroke width
// is taken from r.Width.
func NewEvaluator(ink *InkField, r *Rasterizer) *Evaluator {
	return &Evaluator{ink: ink, raster: r}
}

// Weight returns the amount of ink the stroke s deposits at pixel (x, y):
// the stroke width minus two thirds of the distance from the pixel centre
// to the segment, clamped at zero.
func (e *Evaluator) Weight(s Stroke, x, y int) (float64, error) {
	width := e.raster.Width
	p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	dist := segmentDistance(p, s.A, s.B)
	if math.IsNaN(dist) {
		return 0, fmt.Errorf("%w: distance from pixel (%d,%d) to %s", ErrNaN, x, y, s)
	}
	if dist > 3*max(width, 1) {
		return 0, fmt.Errorf("%w: pixel (%d,%d) is %g units from %s",
			ErrGeometry, x, y, dist, s)
	}
	return max(width-dist/1.5, 0), nil
}

// Evaluate returns the cover of stroke s.  Evaluation stops at the first
// pixel where the stroke would overdraw; the result is then rejected.
func (e *Evaluator) Evaluate(s Stroke) (Cover, error) {
	var c Cover
	var werr error
	err := e.raster.Visit(s, func(x, y, idx int) bool {
		w, err := e.Weight(s, x, y)
		if err != nil {
			werr = err
			return false
		}
		total := e.ink.total[idx]
		if w-total > overdrawThreshold {
			c = Cover{Rejected: true}
			return false
		}
		c.New += min(e.ink.remaining[idx], w)
		c.Total += min(total, w)
		return true
	})
	if err == nil {
		err = werr
	}
	if err != nil {
		return Cover{}, err
	}
	return c, nil
}

// segmentDistance returns the distance from p to the segment from a to b.
func segmentDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := max(0, min(1, p.Sub(a).Dot(d)/l2))
	return p.Sub(a.Add(d.Mul(t))).Length()
}
