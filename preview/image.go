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

package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Picture converts a coverage image into black ink on white paper.
func Picture(a *image.Alpha) *image.Gray {
	b := a.Bounds()
	img := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255 - a.AlphaAt(x, y).A})
		}
	}
	return img
}

// Similarity compares two coverage images of the same size.  The result
// is 1 for identical images and 0 for a black image compared to a blank
// one.  Images of different sizes have similarity 0.
func Similarity(a, b *image.Alpha) float64 {
	ra, rb := a.Bounds(), b.Bounds()
	if ra.Dx() != rb.Dx() || ra.Dy() != rb.Dy() {
		return 0
	}
	n := ra.Dx() * ra.Dy()
	if n == 0 {
		return 1
	}

	var diff int
	for y := range ra.Dy() {
		for x := range ra.Dx() {
			da := int(a.AlphaAt(ra.Min.X+x, ra.Min.Y+y).A)
			db := int(b.AlphaAt(rb.Min.X+x, rb.Min.Y+y).A)
			if da > db {
				diff += da - db
			} else {
				diff += db - da
			}
		}
	}
	return 1 - float64(diff)/float64(255*n)
}

// Diff shows the glyph in red and the stroke reconstruction in green, so
// that areas covered by both appear yellow.
func Diff(glyph, strokes *image.Alpha) *image.RGBA {
	b := glyph.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: glyph.AlphaAt(x, y).A,
				G: strokes.AlphaAt(x, y).A,
				B: 0,
				A: 255,
			})
		}
	}
	return img
}

// Scale enlarges img by an integer factor, so that small glyph images
// remain legible.
func Scale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := range out.Bounds().Dy() {
		for x := range out.Bounds().Dx() {
			out.Set(x, y, img.At(b.Min.X+x/factor, b.Min.Y+y/factor))
		}
	}
	return out
}

// WritePNG stores img in the given file, creating parent directories as
// needed.
func WritePNG(name string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}
