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

import "seehuhn.de/go/geom/vec"

// Neighborhood selects the set of moves tried by the hill climber.
type Neighborhood int

const (
	// FullNeighborhood moves either end point by one pixel in each of the
	// eight compass directions, giving 16 candidate strokes per step.
	FullNeighborhood Neighborhood = iota

	// LegacyNeighborhood only moves end points down, down-left and
	// down-right, giving 6 candidate strokes per step.  This reproduces
	// the stroke shapes of earlier versions of the algorithm.
	LegacyNeighborhood
)

func (n Neighborhood) String() string {
	switch n {
	case FullNeighborhood:
		return "full"
	case LegacyNeighborhood:
		return "legacy"
	default:
		return "unknown"
	}
}

func (n Neighborhood) moves() []vec.Vec2 {
	if n == LegacyNeighborhood {
		return legacyMoves
	}
	return fullMoves
}

var (
	fullMoves = []vec.Vec2{
		{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
		{X: 0, Y: -1}, {X: 0, Y: 1},
		{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}
	legacyMoves = []vec.Vec2{
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)

// climb runs a steepest-ascent hill climb starting from seed.
//
// In every step all neighbouring strokes are evaluated, moving the start
// point before the end point for each direction.  The best candidate
// replaces the current stroke if its cover is strictly better; on ties the
// candidate evaluated first wins.  The climb ends at a local optimum, or
// after maxSteps accepted moves if maxSteps > 0.
func (e *Evaluator) climb(seed Stroke, moves []vec.Vec2, maxSteps int) (Stroke, Cover, int, error) {
	cur := seed
	curCover, err := e.Evaluate(cur)
	if err != nil {
		return cur, Cover{}, 0, err
	}

	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		best, bestCover := cur, curCover
		for _, m := range moves {
			candidates := [2]Stroke{
				{A: cur.A.Add(m), B: cur.B},
				{A: cur.A, B: cur.B.Add(m)},
			}
			for _, cand := range candidates {
				c, err := e.Evaluate(cand)
				if err != nil {
					return cur, curCover, steps, err
				}
				if c.Better(bestCover) {
					best, bestCover = cand, c
				}
			}
		}
		if !bestCover.Better(curCover) {
			break
		}
		cur, curCover = best, bestCover
		steps++
	}
	return cur, curCover, steps, nil
}
