// Package utils holds the collaborator-side helpers around the core
// pipeline: image file I/O, a dominant-color preview, and legend rendering.
package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/stitchkit/stitchkit/palette"
)

// SuggestColors previews the image's dominant colors, darkest first. It is
// an operator aid for judging how many distinct colors an image carries
// before picking a cluster count.
func SuggestColors(img image.Image, n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	candidates := dominantcolor.FindWeight(img, n)
	out := make([]colorful.Color, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, col.Clamped())
	}
	SortByBrightness(out)
	return out
}

// SortByBrightness orders colors from darkest to brightest.
func SortByBrightness(cols []colorful.Color) {
	slices.SortFunc(cols, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveLegend renders one swatch tile per palette match in cluster id order,
// the color-to-code legend a pattern renderer pairs with the stitch grid.
func SaveLegend(matches []palette.Match, tileSize int, filename string) error {
	if len(matches) == 0 {
		return fmt.Errorf("empty legend")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(matches)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, m := range matches {
		c, err := colorful.Hex(m.Hex)
		if err != nil {
			return err
		}
		r := uint8(max(0, min(255, c.R*255)))
		g := uint8(max(0, min(255, c.G*255)))
		b := uint8(max(0, min(255, c.B*255)))
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := 0; y < h; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
	}

	return SaveImage(img, filename)
}
