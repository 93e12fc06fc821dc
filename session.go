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

// Session approximates a single glyph by strokes, one stroke at a time.
//
// The tunable fields may be changed between calls to AddStroke.
// A Session is not safe for concurrent use; separate glyphs can be
// processed by separate sessions in parallel.
type Session struct {
	// StrokeWidth is the width of all strokes, in pixels.  Must be positive.
	StrokeWidth float64

	// Neighborhood selects the moves tried while growing a stroke.
	Neighborhood Neighborhood

	// MaxSteps limits the number of accepted hill climbing moves per
	// stroke.  Zero or negative means no limit.
	MaxSteps int

	width, height int

	ink    *InkField
	queue  *PixelQueue
	raster *Rasterizer
	eval   *Evaluator

	strokes  []Stroke
	deposits []deposit
}

// NewSession starts the approximation of the glyph g.
// The grid is copied; later changes to g do not affect the session.
func NewSession(g Grid) (*Session, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	ink := NewInkField(g)
	r := NewRasterizer(g.Width, g.Height)
	return &Session{
		StrokeWidth:  1,
		Neighborhood: FullNeighborhood,
		MaxSteps:     4 * (g.Width + g.Height),

		width:  g.Width,
		height: g.Height,
		ink:    ink,
		queue:  NewPixelQueue(ink),
		raster: r,
		eval:   NewEvaluator(ink, r),
	}, nil
}

// AddStroke grows one new stroke and commits it.
//
// The seed is the unused pixel with the most remaining ink.  The returned
// cover describes the committed stroke, evaluated before the commit; a
// cover with New <= 0 means that the stroke did not account for any ink.
// If every pixel has been used as a seed, [ErrEmptyQueue] is returned and
// the session is unchanged.  If the stroke geometry turns out to be
// malformed, the error is returned with the ink field and the stroke list
// unchanged; the seed pixel stays used.
func (s *Session) AddStroke() (Cover, error) {
	if !(s.StrokeWidth > 0) || math.IsInf(s.StrokeWidth, 1) {
		return Cover{}, fmt.Errorf("strokefit: invalid stroke width %g", s.StrokeWidth)
	}
	s.raster.Width = s.StrokeWidth

	s.queue.Resync()
	idx, err := s.queue.SelectAndRemove()
	if err != nil {
		return Cover{}, err
	}

	center := vec.Vec2{
		X: float64(idx%s.width) + 0.5,
		Y: float64(idx/s.width) + 0.5,
	}
	seed := Stroke{A: center, B: center}
	stroke, cover, steps, err := s.eval.climb(seed, s.Neighborhood.moves(), s.MaxSteps)
	if err != nil {
		return Cover{}, err
	}

	if err := s.commit(stroke); err != nil {
		return Cover{}, err
	}
	s.strokes = append(s.strokes, stroke)

	Logger().Debug("stroke committed",
		"seed", idx,
		"stroke", stroke,
		"steps", steps,
		"cover", cover,
		"loss", s.ink.Loss())
	return cover, nil
}

// commit subtracts the ink deposited by the stroke from the field.
// All weights are computed before the field is modified, so that on
// error the field is left unchanged.
func (s *Session) commit(stroke Stroke) error {
	s.deposits = s.deposits[:0]
	var werr error
	err := s.raster.Visit(stroke, func(x, y, idx int) bool {
		w, err := s.eval.Weight(stroke, x, y)
		if err != nil {
			werr = err
			return false
		}
		s.deposits = append(s.deposits, deposit{idx: idx, amount: w})
		return true
	})
	if err == nil {
		err = werr
	}
	if err != nil {
		return err
	}

	for _, d := range s.deposits {
		s.ink.Subtract(d.idx, d.amount)
	}
	return nil
}

// deposit is the ink one stroke removes from one pixel.
type deposit struct {
	idx    int
	amount float64
}

// CreateStrokes calls AddStroke n times, stopping at the first error.
func (s *Session) CreateStrokes(n int) error {
	for range n {
		if _, err := s.AddStroke(); err != nil {
			return err
		}
	}
	return nil
}

// Loss returns the total ink not yet covered by any stroke.
// The value never increases over the lifetime of the session.
func (s *Session) Loss() float64 {
	return s.ink.Loss()
}

// Len returns the number of committed strokes.
func (s *Session) Len() int {
	return len(s.strokes)
}

// Seeds returns the number of pixels still available as stroke seeds.
func (s *Session) Seeds() int {
	return s.queue.Len()
}

// Strokes returns the committed strokes in normalized coordinates,
// see [Stroke.Normalized], in the order they were created.
func (s *Session) Strokes() [][4]float64 {
	res := make([][4]float64, len(s.strokes))
	for i, st := range s.strokes {
		res[i] = st.Normalized(s.width, s.height)
	}
	return res
}

// PixelStrokes returns the committed strokes in pixel coordinates.
func (s *Session) PixelStrokes() []Stroke {
	res := make([]Stroke, len(s.strokes))
	copy(res, s.strokes)
	return res
}

// Remaining returns a copy of the remaining ink as a grid.
func (s *Session) Remaining() Grid {
	g := NewGrid(s.width, s.height)
	copy(g.Ink, s.ink.remaining)
	return g
}

// Total returns a copy of the original ink as a grid.
func (s *Session) Total() Grid {
	g := NewGrid(s.width, s.height)
	copy(g.Ink, s.ink.total)
	return g
}
