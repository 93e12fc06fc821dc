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

package strokefit_test

import (
	"errors"
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/strokefit"
	"seehuhn.de/go/strokefit/testcases"
)

// TestInkInvariants checks that committing strokes never creates ink and
// never drives a pixel negative.
func TestInkInvariants(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				s, err := strokefit.NewSession(tc.Grid())
				if err != nil {
					t.Fatal(err)
				}
				if tc.StrokeWidth != 0 {
					s.StrokeWidth = tc.StrokeWidth
				}

				total := s.Total()
				prev := s.Loss()
				for i := range 8 {
					_, err := s.AddStroke()
					if errors.Is(err, strokefit.ErrEmptyQueue) {
						break
					} else if err != nil {
						t.Fatalf("stroke %d: %v", i, err)
					}

					rem := s.Remaining()
					for j, r := range rem.Ink {
						if r < 0 || r > total.Ink[j] || total.Ink[j] > 1 {
							t.Fatalf("stroke %d: pixel %d has remaining %g, total %g",
								i, j, r, total.Ink[j])
						}
					}
					loss := s.Loss()
					if loss > prev {
						t.Fatalf("stroke %d: loss increased from %g to %g", i, prev, loss)
					}
					prev = loss
				}

				if d := cmp.Diff(total, s.Total()); d != "" {
					t.Errorf("total ink changed (-before +after):\n%s", d)
				}
			})
		}
	}
}

func TestSessionDot(t *testing.T) {
	g := strokefit.NewGrid(3, 3)
	g.Ink[4] = 1

	s, err := strokefit.NewSession(g)
	if err != nil {
		t.Fatal(err)
	}
	cover, err := s.AddStroke()
	if err != nil {
		t.Fatal(err)
	}
	if cover.Rejected || cover.New != 1 {
		t.Errorf("unexpected cover %s", cover)
	}
	if loss := s.Loss(); loss != 0 {
		t.Errorf("loss = %g, want 0", loss)
	}

	want := [][4]float64{{0, 0, 0, 0}}
	if d := cmp.Diff(want, s.Strokes()); d != "" {
		t.Errorf("unexpected strokes (-want +got):\n%s", d)
	}
	centre := vec.Vec2{X: 1.5, Y: 1.5}
	if d := cmp.Diff([]strokefit.Stroke{{A: centre, B: centre}}, s.PixelStrokes()); d != "" {
		t.Errorf("unexpected pixel strokes (-want +got):\n%s", d)
	}
}

func TestSessionBlank(t *testing.T) {
	s, err := strokefit.NewSession(strokefit.NewGrid(2, 2))
	if err != nil {
		t.Fatal(err)
	}

	for i := range 4 {
		cover, err := s.AddStroke()
		if err != nil {
			t.Fatalf("stroke %d: %v", i, err)
		}
		if cover.New != 0 {
			t.Errorf("stroke %d covers %g units of ink", i, cover.New)
		}
	}
	if s.Seeds() != 0 {
		t.Errorf("%d seeds left", s.Seeds())
	}

	_, err = s.AddStroke()
	if !errors.Is(err, strokefit.ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("session holds %d strokes, want 4", s.Len())
	}
	if l1, l2 := s.Loss(), s.Loss(); l1 != 0 || l1 != l2 {
		t.Errorf("loss %g then %g", l1, l2)
	}
}

func TestSessionAppendOnly(t *testing.T) {
	tc := testcases.All["glyph"][len(testcases.All["glyph"])-1]
	s, err := strokefit.NewSession(tc.Grid())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.CreateStrokes(3); err != nil {
		t.Fatal(err)
	}
	before := s.Strokes()
	if err := s.CreateStrokes(2); err != nil {
		t.Fatal(err)
	}
	after := s.Strokes()
	if len(after) != 5 {
		t.Fatalf("got %d strokes, want 5", len(after))
	}
	if d := cmp.Diff(before, after[:3]); d != "" {
		t.Errorf("earlier strokes changed (-before +after):\n%s", d)
	}
}

func TestSessionErrors(t *testing.T) {
	if _, err := strokefit.NewSession(strokefit.Grid{Width: 2, Height: 2}); !errors.Is(err, strokefit.ErrInvalidGrid) {
		t.Errorf("short grid: got %v", err)
	}

	s, err := strokefit.NewSession(strokefit.NewGrid(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	s.StrokeWidth = 0
	if _, err := s.AddStroke(); err == nil {
		t.Error("zero stroke width accepted")
	}
	if s.Seeds() != 16 {
		t.Errorf("failed call consumed a seed")
	}
}

// TestNoOverdraw checks that accepted strokes never deposit much more ink
// than the glyph holds at any pixel of their footprint.
func TestNoOverdraw(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, tc := range testcases.All["glyph"] {
		t.Run(tc.Name, func(t *testing.T) {
			g := tc.Grid()
			ink := strokefit.NewInkField(g)
			r := strokefit.NewRasterizer(g.Width, g.Height)
			e := strokefit.NewEvaluator(ink, r)

			for range 200 {
				s := strokefit.Stroke{
					A: vec.Vec2{X: rng.Float64() * float64(g.Width), Y: rng.Float64() * float64(g.Height)},
					B: vec.Vec2{X: rng.Float64() * float64(g.Width), Y: rng.Float64() * float64(g.Height)},
				}
				cover, err := e.Evaluate(s)
				if err != nil {
					t.Fatalf("%s: %v", s, err)
				}
				if cover.Rejected {
					continue
				}
				if cover.New > cover.Total {
					t.Errorf("%s: new ink %g exceeds total %g", s, cover.New, cover.Total)
				}

				err = r.Visit(s, func(x, y, idx int) bool {
					w, err := e.Weight(s, x, y)
					if err != nil {
						t.Error(err)
						return false
					}
					if w-ink.Total(idx) > 0.55 {
						t.Errorf("%s overdraws pixel (%d,%d)", s, x, y)
					}
					return true
				})
				if err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}
