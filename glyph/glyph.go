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

// Package glyph renders single characters of a font into ink grids
// suitable for [strokefit.Fit].
package glyph

import (
	"errors"
	"fmt"
	"image"
	"math"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/strokefit"
)

// ASCII lists the printable ASCII characters, excluding the space.
const ASCII = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// ErrNoGlyph is returned for characters which the font cannot render.
var ErrNoGlyph = errors.New("glyph: character not available")

// Baseline is the position of the baseline, as a fraction of the grid
// height measured from the top.
const Baseline = 0.75

// Rasterizer renders characters of one font.
// It is safe for concurrent use.
type Rasterizer struct {
	font *opentype.Font
	name string
}

// New parses TrueType or OpenType font data.
func New(data []byte) (*Rasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = ""
	}
	return &Rasterizer{font: f, name: name}, nil
}

// Default returns a Rasterizer for the Go Regular font.
func Default() (*Rasterizer, error) {
	return New(goregular.TTF)
}

// Name returns the full font name, if the font provides one.
func (r *Rasterizer) Name() string {
	return r.name
}

// Rasterize draws ch into a width×height grid.  The font size is chosen so
// that one em equals the grid width; the pen starts at the left edge on the
// baseline.  Ink is the coverage of each pixel, from 0 to 1.
//
// Characters without a glyph in the font, and non-printable characters,
// give [ErrNoGlyph].  White space characters give a blank grid.
func (r *Rasterizer) Rasterize(ch rune, width, height int) (strokefit.Grid, error) {
	if width <= 0 || height <= 0 {
		return strokefit.Grid{}, fmt.Errorf("glyph: invalid size %dx%d", width, height)
	}
	if !unicode.IsPrint(ch) && !unicode.IsSpace(ch) {
		return strokefit.Grid{}, fmt.Errorf("%w: %U", ErrNoGlyph, ch)
	}
	g := strokefit.NewGrid(width, height)
	if unicode.IsSpace(ch) {
		return g, nil
	}

	var buf sfnt.Buffer
	idx, err := r.font.GlyphIndex(&buf, ch)
	if err != nil {
		return strokefit.Grid{}, fmt.Errorf("glyph: %U: %w", ch, err)
	}
	if idx == 0 {
		return strokefit.Grid{}, fmt.Errorf("%w: %U in %q", ErrNoGlyph, ch, r.name)
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(width),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return strokefit.Grid{}, fmt.Errorf("glyph: %w", err)
	}
	defer face.Close()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			Y: fixed.Int26_6(math.Round(Baseline * float64(height) * 64)),
		},
	}
	d.DrawString(string(ch))

	for y := range height {
		row := dst.Pix[y*dst.Stride:]
		for x := range width {
			g.Ink[x+width*y] = float64(row[x]) / 255
		}
	}
	return g, nil
}
