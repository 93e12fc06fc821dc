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
	"cmp"
	"slices"
)

// PixelQueue hands out seed pixels in order of decreasing remaining ink.
// Pixels with equal remaining ink are returned lowest index first.
// Every pixel is returned at most once.
//
// The ordering key lives in the [InkField] and changes whenever a stroke is
// committed, so callers must call Resync before SelectAndRemove whenever
// the field may have changed.
type PixelQueue struct {
	ink *InkField

	// idx holds the unused pixel indices, best candidate last.
	idx []int
}

// NewPixelQueue returns a queue containing every pixel of the field.
func NewPixelQueue(ink *InkField) *PixelQueue {
	idx := make([]int, ink.Len())
	for i := range idx {
		idx[i] = i
	}
	q := &PixelQueue{ink: ink, idx: idx}
	q.Resync()
	return q
}

// Len returns the number of pixels which have not been selected yet.
func (q *PixelQueue) Len() int {
	return len(q.idx)
}

// Resync restores the queue order from the current remaining ink values.
// This is a full sort, O(n log n) in the number of unused pixels.
func (q *PixelQueue) Resync() {
	rem := q.ink.remaining
	slices.SortFunc(q.idx, func(a, b int) int {
		if c := cmp.Compare(rem[a], rem[b]); c != 0 {
			return c
		}
		// lower indices sort towards the end, where they are taken first
		return cmp.Compare(b, a)
	})
}

// SelectAndRemove removes and returns the pixel with the most remaining
// ink.  If all pixels have been used, [ErrEmptyQueue] is returned.
func (q *PixelQueue) SelectAndRemove() (int, error) {
	n := len(q.idx)
	if n == 0 {
		return 0, ErrEmptyQueue
	}
	i := q.idx[n-1]
	q.idx = q.idx[:n-1]
	return i, nil
}
