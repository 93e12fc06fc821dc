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

// Package strokefit approximates a rasterised glyph by a short, ordered list
// of straight strokes.
//
// The glyph is given as a [Grid] of per-pixel ink values. A [Session] then
// repeatedly picks the unused pixel with the most remaining ink, grows a
// stroke from there by hill climbing on the stroke end points, and subtracts
// the ink covered by the final stroke. [Fit] wraps this loop with the usual
// stopping rules.
package strokefit

import (
	"errors"
)

var (
	// ErrEmptyQueue is returned when every pixel has already been used as
	// the seed of a stroke.
	ErrEmptyQueue = errors.New("strokefit: no seed pixels left")

	// ErrNaN indicates that a stroke coordinate or a pixel distance was
	// not a number.
	ErrNaN = errors.New("strokefit: NaN in stroke geometry")

	// ErrGeometry indicates a pixel which cannot belong to the footprint of
	// the stroke under evaluation.
	ErrGeometry = errors.New("strokefit: inconsistent stroke geometry")

	// ErrInvalidGrid is returned for malformed input grids.
	ErrInvalidGrid = errors.New("strokefit: invalid ink grid")
)
