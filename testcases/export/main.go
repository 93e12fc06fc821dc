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

// Command export fits every test case and writes the ink grids together
// with the resulting strokes to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/strokefit"
	"seehuhn.de/go/strokefit/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(ctx, category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string       `json:"name"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	StrokeWidth float64      `json:"stroke_width"`
	Ink         []float64    `json:"ink"`
	Strokes     [][4]float64 `json:"strokes"`
	InitialLoss float64      `json:"initial_loss"`
	Loss        float64      `json:"loss"`
	Stop        string       `json:"stop"`
}

func toJSON(ctx context.Context, category string, tc testcases.TestCase) (jsonTestCase, error) {
	g := tc.Grid()
	opt := strokefit.DefaultFitOptions()
	if tc.StrokeWidth != 0 {
		opt.StrokeWidth = tc.StrokeWidth
	}
	res, err := strokefit.Fit(ctx, g, opt)
	if err != nil {
		return jsonTestCase{}, err
	}

	strokes := res.Strokes
	if strokes == nil {
		strokes = [][4]float64{}
	}
	return jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       tc.Width,
		Height:      tc.Height,
		StrokeWidth: opt.StrokeWidth,
		Ink:         g.Ink,
		Strokes:     strokes,
		InitialLoss: res.InitialLoss,
		Loss:        res.Loss,
		Stop:        res.Reason.String(),
	}, nil
}
