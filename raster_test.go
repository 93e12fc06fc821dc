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
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// footprint returns the sorted pixel indices visited for s.
func footprint(t *testing.T, r *Rasterizer, s Stroke) []int {
	t.Helper()
	var idx []int
	err := r.Visit(s, func(x, y, i int) bool {
		if i != x+r.stride*y {
			t.Fatalf("index %d does not match (%d,%d)", i, x, y)
		}
		idx = append(idx, i)
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(idx)
	return idx
}

func TestVisitDegenerate(t *testing.T) {
	r := NewRasterizer(5, 5)
	got := footprint(t, r, Stroke{A: pt(2.7, 3.2), B: pt(2.7, 3.2)})
	if d := cmp.Diff([]int{2 + 5*3}, got); d != "" {
		t.Error(d)
	}
}

func TestVisitHorizontal(t *testing.T) {
	r := NewRasterizer(8, 8)
	got := footprint(t, r, Stroke{A: pt(0.5, 2.5), B: pt(5.5, 2.5)})

	var want []int
	for _, y := range []int{2, 3} {
		for x := 0; x <= 5; x++ {
			want = append(want, x+8*y)
		}
	}
	slices.Sort(want)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("footprint mismatch (-want +got):\n%s", d)
	}
}

func TestVisitVertical(t *testing.T) {
	r := NewRasterizer(6, 6)
	got := footprint(t, r, Stroke{A: pt(2.5, 4.5), B: pt(2.5, 0.5)})
	for y := 0; y <= 4; y++ {
		if _, found := slices.BinarySearch(got, 2+6*y); !found {
			t.Errorf("pixel (2,%d) missing from %v", y, got)
		}
	}
}

func TestVisitClip(t *testing.T) {
	r := NewRasterizer(4, 3)
	got := footprint(t, r, Stroke{A: pt(-3, -3), B: pt(10, 10)})
	for _, i := range got {
		if i < 0 || i >= 12 {
			t.Errorf("index %d outside the grid", i)
		}
	}
	if len(got) == 0 {
		t.Error("diagonal through the grid visits no pixels")
	}

	if got := footprint(t, r, Stroke{A: pt(-5, 1), B: pt(-2, 1)}); len(got) != 0 {
		t.Errorf("stroke outside the grid visits %v", got)
	}
}

func TestVisitUnique(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const w, h = 13, 17
	for _, width := range []float64{1, 1.5, 2, 3} {
		r := NewRasterizer(w, h)
		r.Width = width
		for range 500 {
			s := Stroke{
				A: pt(rng.Float64()*20-3, rng.Float64()*24-3),
				B: pt(rng.Float64()*20-3, rng.Float64()*24-3),
			}
			seen := make(map[int]bool)
			err := r.Visit(s, func(x, y, idx int) bool {
				if seen[idx] {
					t.Fatalf("width %g, stroke %s: pixel %d visited twice", width, s, idx)
				}
				seen[idx] = true
				if x < 0 || x >= w || y < 0 || y >= h {
					t.Fatalf("pixel (%d,%d) outside the grid", x, y)
				}
				return true
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestVisitStop(t *testing.T) {
	r := NewRasterizer(10, 10)
	calls := 0
	err := r.Visit(Stroke{A: pt(1, 1), B: pt(8, 8)}, func(x, y, idx int) bool {
		calls++
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("visitor called %d times after requesting stop", calls)
	}

	// the scratch bitmap must be clean after an early stop
	got := footprint(t, r, Stroke{A: pt(1, 1), B: pt(8, 8)})
	if len(got) < 8 {
		t.Errorf("second visit found only %d pixels", len(got))
	}
}

func TestVisitNaN(t *testing.T) {
	r := NewRasterizer(4, 4)
	strokes := []Stroke{
		{A: pt(math.NaN(), 1), B: pt(2, 2)},
		{A: pt(1, 1), B: pt(2, math.NaN())},
		{A: pt(math.Inf(1), 1), B: pt(2, 2)},
	}
	for _, s := range strokes {
		called := false
		err := r.Visit(s, func(x, y, idx int) bool {
			called = true
			return true
		})
		if !errors.Is(err, ErrNaN) {
			t.Errorf("%s: got %v, want ErrNaN", s, err)
		}
		if called {
			t.Errorf("%s: visitor called despite error", s)
		}
	}
}

func TestVisitFar(t *testing.T) {
	r := NewRasterizer(8, 8)

	var rows, fromInside []int
	for y := 2; y <= 3; y++ {
		for x := range 8 {
			rows = append(rows, x+8*y)
			if x >= 2 {
				fromInside = append(fromInside, x+8*y)
			}
		}
	}

	cases := []struct {
		name string
		s    Stroke
		want []int
	}{
		{"through", Stroke{A: pt(-1e15, 2.5), B: pt(1e15, 2.5)}, rows},
		{"from_inside", Stroke{A: pt(2.5, 2.5), B: pt(1e15, 2.5)}, fromInside},
		{"outside", Stroke{A: pt(-1e15, -1e15), B: pt(-1e15, 1e15)}, nil},
		{"diagonal_miss", Stroke{A: pt(20, -1e12), B: pt(1e12, 20)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := footprint(t, r, c.s)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected footprint (-want +got):\n%s", d)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	s := Stroke{A: pt(6, 9), B: pt(0, 18)}
	n := s.Normalized(12, 18)
	if d := cmp.Diff([4]float64{0, 0, -0.5, 0.5}, n); d != "" {
		t.Error(d)
	}
	if back := Denormalize(n, 12, 18); back != s {
		t.Errorf("Denormalize = %s, want %s", back, s)
	}
}
