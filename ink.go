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

import "math"

// InkField tracks how much of the glyph's ink is still waiting to be
// covered by strokes.
//
// For every pixel index i the field maintains
// 0 <= Remaining(i) <= Total(i) <= 1.  Total is fixed at construction,
// Remaining only ever decreases.
type InkField struct {
	width, height int
	remaining     []float64
	total         []float64
}

// NewInkField creates a field from a validated grid.
// Both the remaining and the total ink start as copies of g.Ink.
func NewInkField(g Grid) *InkField {
	total := make([]float64, len(g.Ink))
	copy(total, g.Ink)
	remaining := make([]float64, len(g.Ink))
	copy(remaining, g.Ink)
	return &InkField{
		width:     g.Width,
		height:    g.Height,
		remaining: remaining,
		total:     total,
	}
}

// Width returns the width of the field in pixels.
func (f *InkField) Width() int { return f.width }

// Height returns the height of the field in pixels.
func (f *InkField) Height() int { return f.height }

// Len returns the number of pixels.
func (f *InkField) Len() int { return len(f.total) }

// Remaining returns the ink at pixel i not yet covered by any stroke.
func (f *InkField) Remaining(i int) float64 { return f.remaining[i] }

// Total returns the original ink at pixel i.
func (f *InkField) Total(i int) float64 { return f.total[i] }

// Subtract removes up to amount of ink from pixel i and returns the
// amount actually removed.  Negative amounts and NaN remove nothing.
func (f *InkField) Subtract(i int, amount float64) float64 {
	if math.IsNaN(amount) {
		return 0
	}
	amount = min(f.remaining[i], max(amount, 0))
	f.remaining[i] -= amount
	return amount
}

// Loss returns the sum of the remaining ink over all pixels.
func (f *InkField) Loss() float64 {
	var loss float64
	for _, v := range f.remaining {
		loss += v
	}
	return loss
}
