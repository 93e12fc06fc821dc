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

// Strokefit approximates the glyphs of a font by straight strokes.
//
// For every character, one JSON object per line is written to standard
// output, holding the character, the remaining ink and the strokes in
// normalized coordinates.
//
// Usage:
//
//	strokefit [flags]
//
// The flags are:
//
//	-font file.ttf
//		TrueType or OpenType font to use (default Go Regular)
//	-chars string
//		characters to approximate (default printable ASCII)
//	-width, -height n
//		glyph grid size in pixels (default 12×18)
//	-strokes n
//		maximal number of strokes per glyph (default 32)
//	-stroke-width w
//		stroke width in pixels (default 1)
//	-min-loss x
//		stop once less ink than this remains (default 0.05)
//	-legacy
//		grow strokes using only the downward moves
//	-workers n
//		number of glyphs fitted in parallel
//	-png dir
//		write preview images to this directory
//	-v
//		log progress to standard error
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/strokefit"
	"seehuhn.de/go/strokefit/glyph"
	"seehuhn.de/go/strokefit/preview"
)

var (
	fontFile    = flag.String("font", "", "TrueType or OpenType font file")
	chars       = flag.String("chars", glyph.ASCII, "characters to approximate")
	width       = flag.Int("width", 12, "glyph width in pixels")
	height      = flag.Int("height", 18, "glyph height in pixels")
	maxStrokes  = flag.Int("strokes", 32, "maximal number of strokes per glyph")
	strokeWidth = flag.Float64("stroke-width", 1, "stroke width in pixels")
	minLoss     = flag.Float64("min-loss", 0.05, "stop once less ink remains")
	legacy      = flag.Bool("legacy", false, "only grow strokes downwards")
	workers     = flag.Int("workers", runtime.GOMAXPROCS(0), "number of parallel fits")
	pngDir      = flag.String("png", "", "directory for preview images")
	verbose     = flag.Bool("v", false, "log progress to stderr")
)

type record struct {
	Char    string       `json:"char"`
	Loss    float64      `json:"loss"`
	Strokes [][4]float64 `json:"strokes"`
}

func main() {
	log.SetPrefix("strokefit: ")
	log.SetFlags(0)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid glyph size %dx%d", *width, *height)
	}
	if !(*strokeWidth > 0) {
		log.Fatalf("invalid stroke width %g", *strokeWidth)
	}
	if *workers < 1 {
		*workers = 1
	}
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		strokefit.SetLogger(slog.New(h))
	}

	font, err := loadFont(*fontFile)
	if err != nil {
		log.Fatalf("%s: %v", *fontFile, err)
	}

	opt := &strokefit.FitOptions{
		MaxStrokes:  *maxStrokes,
		MinLoss:     *minLoss,
		StrokeWidth: *strokeWidth,
	}
	if *legacy {
		opt.Neighborhood = strokefit.LegacyNeighborhood
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runes := []rune(norm.NFC.String(*chars))
	out, err := fitAll(ctx, font, runes, opt)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, rec := range out {
		if err := enc.Encode(rec); err != nil {
			log.Fatal(err)
		}
	}
}

func loadFont(fname string) (*glyph.Rasterizer, error) {
	if fname == "" {
		return glyph.Default()
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return glyph.New(data)
}

// fitAll fits every character in parallel.  Characters missing from the
// font are skipped with a warning.  The results are returned in input
// order.
func fitAll(ctx context.Context, font *glyph.Rasterizer, runes []rune, opt *strokefit.FitOptions) ([]record, error) {
	results := make([]*record, len(runes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i, ch := range runes {
		g.Go(func() error {
			grid, err := font.Rasterize(ch, *width, *height)
			if err != nil {
				log.Printf("skipping %q: %v", ch, err)
				return nil
			}

			res, err := strokefit.Fit(ctx, grid, opt)
			if err != nil {
				return fmt.Errorf("%q: %w", ch, err)
			}

			if *pngDir != "" {
				if err := writePreview(ch, grid, res); err != nil {
					return err
				}
			}

			strokes := res.Strokes
			if strokes == nil {
				strokes = [][4]float64{}
			}
			results[i] = &record{Char: string(ch), Loss: res.Loss, Strokes: strokes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []record
	for _, rec := range results {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out, nil
}

// writePreview stores the glyph, its reconstruction and the overlay of the
// two side by side.
func writePreview(ch rune, grid strokefit.Grid, res *strokefit.Result) error {
	const scale = 8

	ink := preview.Ink(grid)
	recon := preview.Render(res.Strokes, res.Width, res.Height, *strokeWidth)
	base := filepath.Join(*pngDir, fmt.Sprintf("U+%04X", ch))

	strokefit.Logger().Debug("preview",
		"char", string(ch),
		"similarity", preview.Similarity(ink, recon))

	images := map[string]image.Image{
		"-glyph.png":   preview.Picture(ink),
		"-strokes.png": preview.Picture(recon),
		"-diff.png":    preview.Diff(ink, recon),
	}
	for suffix, img := range images {
		if err := preview.WritePNG(base+suffix, preview.Scale(img, scale)); err != nil {
			return err
		}
	}
	return nil
}
