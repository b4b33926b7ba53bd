package stitchkit

import (
	"fmt"
	"slices"

	"github.com/stitchkit/stitchkit/palette"
)

// LabeledPixel is one row of the final pattern table: grid position, the
// cluster the pixel landed in, and the resolved floss color to stitch it
// with. Rows are immutable; the renderer owns them once produced.
type LabeledPixel struct {
	X, Y      int
	ClusterID int
	Hex       string
}

// Assemble joins per-pixel cluster labels with their resolved palette
// colors. A non-empty subset keeps only the listed cluster ids; a non-empty
// excludeCode drops every pixel whose resolved floss code matches it,
// typically the fabric background. Both filters only remove rows, never
// alter retained ones. Rows come back sorted by (y,x).
func Assemble(fc *FinalClustering, matches []palette.Match, subset []int, excludeCode string) ([]LabeledPixel, error) {
	hexByID := make(map[int]string, len(matches))
	codeByID := make(map[int]string, len(matches))
	for _, m := range matches {
		hexByID[m.ClusterID] = m.Hex
		codeByID[m.ClusterID] = m.Code
	}
	for id := range fc.Centroids {
		if _, ok := hexByID[id]; !ok {
			return nil, fmt.Errorf("assemble: cluster %d has no palette match", id)
		}
	}

	keep := func(id int) bool {
		if len(subset) > 0 && !slices.Contains(subset, id) {
			return false
		}
		return excludeCode == "" || codeByID[id] != excludeCode
	}

	rows := make([]LabeledPixel, 0, len(fc.Labels))
	for pt, id := range fc.Labels {
		if !keep(id) {
			continue
		}
		rows = append(rows, LabeledPixel{X: pt.X, Y: pt.Y, ClusterID: id, Hex: hexByID[id]})
	}
	slices.SortFunc(rows, func(a, b LabeledPixel) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return rows, nil
}
