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
	"context"
	"errors"
)

// StopReason tells why [Fit] stopped adding strokes.
type StopReason int

const (
	// StopMaxStrokes means that the stroke budget was used up.
	StopMaxStrokes StopReason = iota

	// StopConverged means that the remaining ink dropped to MinLoss.
	StopConverged

	// StopExhausted means that every pixel has been used as a seed.
	StopExhausted
)

func (r StopReason) String() string {
	switch r {
	case StopMaxStrokes:
		return "max-strokes"
	case StopConverged:
		return "converged"
	case StopExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// FitOptions control [Fit].
type FitOptions struct {
	// MaxStrokes is the stroke budget.  Zero or negative means that only
	// the other stopping rules apply.
	MaxStrokes int

	// MinLoss stops the fit once the remaining ink is at most this value.
	MinLoss float64

	// StrokeWidth is the stroke width in pixels.  Zero selects 1.
	StrokeWidth float64

	// Neighborhood selects the moves tried while growing a stroke.
	Neighborhood Neighborhood

	// MaxSteps limits the hill climbing moves per stroke.  Zero selects the
	// session default.
	MaxSteps int

	// KeepEmpty includes strokes which left the ink field unchanged in the
	// result and counts them against MaxStrokes.  By default such strokes
	// are dropped, and the fit moves on to the next seed pixel.  A stroke
	// which removed any ink is always kept, so that the final loss is
	// accounted for by the returned strokes.
	KeepEmpty bool
}

// DefaultFitOptions returns the options used when Fit is called with nil
// options: 32 strokes of width 1, stopping when less than 0.05 units of
// ink remain.
func DefaultFitOptions() *FitOptions {
	return &FitOptions{
		MaxStrokes:  32,
		MinLoss:     0.05,
		StrokeWidth: 1,
	}
}

// Result is the outcome of [Fit].
type Result struct {
	Width, Height int

	// Strokes holds the strokes in normalized coordinates.
	Strokes [][4]float64

	// PixelStrokes holds the same strokes in pixel coordinates.
	PixelStrokes []Stroke

	InitialLoss float64
	Loss        float64

	// Attempts counts all strokes grown, including dropped empty ones.
	Attempts int

	Reason StopReason
}

// Fit approximates the glyph g by strokes.
//
// Running out of seed pixels and reaching MinLoss are normal ways to
// finish.  An error is returned for invalid input, for malformed stroke
// geometry, and if ctx is cancelled; in the last case the error wraps
// ctx.Err().
func Fit(ctx context.Context, g Grid, opt *FitOptions) (*Result, error) {
	if opt == nil {
		opt = DefaultFitOptions()
	}

	s, err := NewSession(g)
	if err != nil {
		return nil, err
	}
	if opt.StrokeWidth != 0 {
		s.StrokeWidth = opt.StrokeWidth
	}
	s.Neighborhood = opt.Neighborhood
	if opt.MaxSteps != 0 {
		s.MaxSteps = opt.MaxSteps
	}

	res := &Result{
		Width:       g.Width,
		Height:      g.Height,
		InitialLoss: s.Loss(),
	}
	var kept []int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.Loss() <= opt.MinLoss {
			res.Reason = StopConverged
			break
		}
		if opt.MaxStrokes > 0 && len(kept) >= opt.MaxStrokes {
			res.Reason = StopMaxStrokes
			break
		}

		before := s.Loss()
		cover, err := s.AddStroke()
		if errors.Is(err, ErrEmptyQueue) {
			res.Reason = StopExhausted
			break
		} else if err != nil {
			return nil, err
		}
		res.Attempts++
		if cover.New > 0 || s.Loss() < before || opt.KeepEmpty {
			kept = append(kept, s.Len()-1)
		}
	}

	all := s.PixelStrokes()
	for _, i := range kept {
		res.PixelStrokes = append(res.PixelStrokes, all[i])
		res.Strokes = append(res.Strokes, all[i].Normalized(g.Width, g.Height))
	}
	res.Loss = s.Loss()

	Logger().Info("glyph fitted",
		"size", [2]int{g.Width, g.Height},
		"strokes", len(kept),
		"attempts", res.Attempts,
		"loss", res.Loss,
		"reason", res.Reason)
	return res, nil
}
