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
)

// Grid is a dense grayscale ink image in row-major order.
// Ink values range from 0 (blank) to 1 (fully inked); the value for
// pixel (x, y) is stored at index x + Width*y.
type Grid struct {
	Width  int
	Height int
	Ink    []float64
}

// NewGrid returns an empty (all blank) grid of the given size.
func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Ink:    make([]float64, width*height),
	}
}

// Validate checks the grid dimensions and ink values.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if len(g.Ink) != g.Width*g.Height {
		return fmt.Errorf("%w: %d ink values for %dx%d pixels",
			ErrInvalidGrid, len(g.Ink), g.Width, g.Height)
	}
	for i, v := range g.Ink {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: ink %g at (%d,%d)",
				ErrInvalidGrid, v, i%g.Width, i/g.Width)
		}
	}
	return nil
}

// Bounds returns the area covered by the grid, in pixel units.
func (g Grid) Bounds() rect.Rect {
	return rect.Rect{URx: float64(g.Width), URy: float64(g.Height)}
}

// Sum returns the total amount of ink in the grid.
func (g Grid) Sum() float64 {
	var sum float64
	for _, v := range g.Ink {
		sum += v
	}
	return sum
}
