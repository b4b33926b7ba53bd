package stitchkit

import (
	"fmt"
	"image"
)

// Pixel is one row of the flattened image: grid position plus RGB channels
// normalized to [0,1]. Immutable once built; (X,Y) is unique per table.
type Pixel struct {
	X, Y    int
	R, G, B float64
}

// PixelsFromImage flattens a decoded image into one Pixel per grid position.
// Coordinates are zero-based regardless of the image's bounds origin. Row
// order carries no meaning downstream.
func PixelsFromImage(img image.Image) []Pixel {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pixels := make([]Pixel, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels = append(pixels, Pixel{
				X: x,
				Y: y,
				R: float64(r) / 65535.0,
				G: float64(g) / 65535.0,
				B: float64(b) / 65535.0,
			})
		}
	}
	return pixels
}

// PixelsFromGrid flattens a raw H×W×3 grid whose channels are already
// normalized to [0,1]. Every cell must carry exactly three channels with
// in-range values.
func PixelsFromGrid(grid [][][]float64) ([]Pixel, error) {
	var pixels []Pixel
	for y, row := range grid {
		for x, cell := range row {
			if len(cell) != 3 {
				return nil, fmt.Errorf("pixel table: cell (%d,%d) has %d channels: %w",
					x, y, len(cell), ErrInvalidImageFormat)
			}
			for ch, v := range cell {
				if v < 0 || v > 1 {
					return nil, fmt.Errorf("pixel table: cell (%d,%d) channel %d value %g outside [0,1]: %w",
						x, y, ch, v, ErrInvalidImageFormat)
				}
			}
			pixels = append(pixels, Pixel{X: x, Y: y, R: cell[0], G: cell[1], B: cell[2]})
		}
	}
	return pixels, nil
}
