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

package testcases

import (
	"maps"
	"regexp"
	"slices"
	"testing"
)

func TestCasesValid(t *testing.T) {
	namePat := regexp.MustCompile(`^[a-z0-9_]+$`)
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				if !namePat.MatchString(tc.Name) {
					t.Errorf("invalid name %q", tc.Name)
				}
				if seen[name] {
					t.Errorf("duplicate name %q", name)
				}
				seen[name] = true

				g := tc.Grid()
				if err := g.Validate(); err != nil {
					t.Fatal(err)
				}
				if tc.Shape == nil && g.Sum() != 0 {
					t.Errorf("blank case has ink %g", g.Sum())
				}
				if tc.Shape != nil && g.Sum() == 0 {
					t.Error("shape produced no ink")
				}
			})
		}
	}
}

func TestDotGrid(t *testing.T) {
	g := glyphCases[0].Grid()
	if glyphCases[0].Name != "dot" {
		t.Fatalf("unexpected first case %q", glyphCases[0].Name)
	}
	for i, v := range g.Ink {
		want := 0.0
		if i == 4 {
			want = 1
		}
		if d := v - want; d > 0.01 || d < -0.01 {
			t.Errorf("ink[%d] = %g, want %g", i, v, want)
		}
	}
}

func TestRingHole(t *testing.T) {
	var tc TestCase
	for _, c := range glyphCases {
		if c.Name == "letter_o" {
			tc = c
		}
	}
	g := tc.Grid()
	at := func(x, y int) float64 { return g.Ink[x+g.Width*y] }

	if v := at(12, 12); v > 0.01 {
		t.Errorf("centre of the ring has ink %g", v)
	}
	for _, p := range [][2]int{{12, 4}, {4, 12}, {19, 12}, {12, 19}} {
		if v := at(p[0], p[1]); v < 0.9 {
			t.Errorf("ring pixel %v has ink %g", p, v)
		}
	}
}

func TestGreyLevel(t *testing.T) {
	for _, tc := range barCases {
		if tc.Level == 0 {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			g := tc.Grid()
			for i, v := range g.Ink {
				if v > tc.Level+1e-9 {
					t.Fatalf("ink[%d] = %g exceeds level %g", i, v, tc.Level)
				}
			}
		})
	}
}

func TestCurves(t *testing.T) {
	type probe struct {
		x, y  int
		inked bool
	}
	probes := map[string][]probe{
		"arch": {{12, 12, true}, {12, 15, false}, {12, 5, false}},
		"cup":  {{12, 12, true}, {12, 7, false}, {12, 20, false}},
	}
	for _, tc := range curveCases {
		ps, ok := probes[tc.Name]
		if !ok {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			g := tc.Grid()
			for _, p := range ps {
				v := g.Ink[p.x+g.Width*p.y]
				if p.inked && v < 0.9 {
					t.Errorf("pixel (%d,%d) has ink %g", p.x, p.y, v)
				} else if !p.inked && v > 0.01 {
					t.Errorf("pixel (%d,%d) should be blank, has %g", p.x, p.y, v)
				}
			}
		})
	}
}
