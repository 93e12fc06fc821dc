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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommit(t *testing.T) {
	s, err := NewSession(barGrid())
	if err != nil {
		t.Fatal(err)
	}
	before := s.Remaining()

	err = s.commit(Stroke{A: pt(2.5, 4.5), B: pt(math.NaN(), 4.5)})
	if !errors.Is(err, ErrNaN) {
		t.Fatalf("expected ErrNaN, got %v", err)
	}
	if d := cmp.Diff(before, s.Remaining()); d != "" {
		t.Errorf("failed commit changed the field (-before +after):\n%s", d)
	}

	if err := s.commit(Stroke{A: pt(9.5, 4.5), B: pt(2.5, 4.5)}); err != nil {
		t.Fatal(err)
	}
	if loss := s.Loss(); loss != 0 {
		t.Errorf("loss after commit is %g, want 0", loss)
	}
	if s.Len() != 0 {
		t.Errorf("commit appended a stroke")
	}
}
