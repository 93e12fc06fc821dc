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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var blankCases = []TestCase{
	{
		Name:   "tiny",
		Width:  2,
		Height: 2,
	},
	{
		Name:   "space",
		Width:  12,
		Height: 18,
	},
}

var barCases = []TestCase{
	{
		Name:   "horizontal",
		Shape:  rectangle(2, 8, 10, 9),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "vertical",
		Shape:  rectangle(5, 2, 6, 16),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "thick",
		Shape:  rectangle(2, 6, 10, 9),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "grey",
		Shape:  rectangle(2, 8, 10, 9),
		Width:  12,
		Height: 18,
		Level:  0.6,
	},
	{
		Name:   "diagonal",
		Shape:  polygon(2, 15, 3.5, 15, 10, 3, 8.5, 3),
		Width:  12,
		Height: 18,
	},
	{
		Name:        "wide_stroke",
		Shape:       rectangle(2, 7, 10, 10),
		Width:       12,
		Height:      18,
		StrokeWidth: 1.5,
	},
}

var glyphCases = []TestCase{
	{
		Name:   "dot",
		Shape:  rectangle(1, 1, 2, 2),
		Width:  3,
		Height: 3,
	},
	{
		Name:   "letter_l",
		Shape:  polygon(3, 2, 5, 2, 5, 13, 10, 13, 10, 15, 3, 15),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "letter_t",
		Shape:  polygon(1, 2, 11, 2, 11, 4, 7, 4, 7, 16, 5, 16, 5, 4, 1, 4),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "letter_v",
		Shape:  polygon(1, 3, 3, 3, 6, 13, 9, 3, 11, 3, 7, 15, 5, 15),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "letter_x",
		Shape:  join(polygon(1, 3, 3, 3, 11, 15, 9, 15), polygon(9, 3, 11, 3, 3, 15, 1, 15)),
		Width:  12,
		Height: 18,
	},
	{
		Name:   "letter_o",
		Shape:  ring(12, 12, 9, 6),
		Width:  24,
		Height: 24,
	},
	{
		Name:   "triangle",
		Shape:  polygon(2, 20, 12, 3, 22, 20),
		Width:  24,
		Height: 24,
	},
}

// rectangle builds an axis-aligned rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// polygon builds a closed path through the points (xy[0], xy[1]),
// (xy[2], xy[3]), ...
func polygon(xy ...float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var cmd path.Command = path.CmdMoveTo
		for i := 0; i+1 < len(xy); i += 2 {
			if !yield(cmd, []vec.Vec2{{X: xy[i], Y: xy[i+1]}}) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// join concatenates the subpaths of several paths.
func join(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// ring builds an annulus around (cx, cy).  The inner circle runs in the
// opposite direction so that it becomes a hole under the non-zero rule.
func ring(cx, cy, r, ir float64) path.Path {
	return join(circle(cx, cy, r, false), circle(cx, cy, ir, true))
}

// circle approximates a circle by four cubic Bézier segments.
func circle(cx, cy, r float64, reverse bool) path.Path {
	const kappa = 0.5522847498307936
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := r * kappa
		sy := 1.0
		if reverse {
			sy = -1
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) {
			return
		}
		quadrants := [][3]vec.Vec2{
			{{X: cx + r, Y: cy - sy*k}, {X: cx + k, Y: cy - sy*r}, {X: cx, Y: cy - sy*r}},
			{{X: cx - k, Y: cy - sy*r}, {X: cx - r, Y: cy - sy*k}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy + sy*k}, {X: cx - k, Y: cy + sy*r}, {X: cx, Y: cy + sy*r}},
			{{X: cx + k, Y: cy + sy*r}, {X: cx + r, Y: cy + sy*k}, {X: cx + r, Y: cy}},
		}
		for _, q := range quadrants {
			if !yield(path.CmdCubeTo, q[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
