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

var curveCases = []TestCase{
	{
		Name:   "arch",
		Shape:  quadraticBand(3, 20, 12, 2, 21, 20, 18, 20, 12, 8, 6, 20),
		Width:  24,
		Height: 24,
	},
	{
		Name:   "cup",
		Shape:  cubicCup(4, 20, 3, 16, 3),
		Width:  24,
		Height: 24,
	},
	{
		Name:   "cup_grey",
		Shape:  cubicCup(4, 20, 3, 16, 3),
		Width:  24,
		Height: 24,
		Level:  0.7,
	},
}

// quadraticBand builds the area between an outer quadratic Bézier curve
// (x0,y0)-(cx0,cy0)-(x1,y1) and an inner one running back from (x2,y2)
// via (cx1,cy1) to (x3,y3).
func quadraticBand(x0, y0, cx0, cy0, x1, y1, x2, y2, cx1, cy1, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: cx0, Y: cy0}, {X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: cx1, Y: cy1}, {X: x3, Y: y3}}) &&
			yield(path.CmdClose, nil)
	}
}

// cubicCup builds a U shape between x=left and x=right, open at the top
// (y=top), with arms of the given thickness and the bowl bottoming out
// near y=bottom.
func cubicCup(left, right, thick, bottom, top float64) path.Path {
	il, ir := left+thick, right-thick
	inner := bottom - thick
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: left, Y: top}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: il, Y: top}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: il, Y: inner}, {X: ir, Y: inner}, {X: ir, Y: top}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: right, Y: top}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: right, Y: bottom + 4}, {X: left, Y: bottom + 4}, {X: left, Y: top}}) &&
			yield(path.CmdClose, nil)
	}
}
