// Package stitchkit reduces a raster image to a small set of thread colors
// for a stitched craft pattern: it clusters the image's pixel colors,
// resolves each cluster against a fixed floss palette, and emits a labeled
// per-pixel table for a grid renderer.
package stitchkit

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/stitchkit/stitchkit/palette"
)

// Options control the pipeline stages.
type Options struct {
	// Candidate cluster counts scanned for the scree diagnostic. When a
	// range is configured (both bounds non-zero), the final k must fall
	// inside it. Zero bounds skip the scan entirely.
	ScanMin, ScanMax int
	// Restarts per scanned k. Low by default; the scan is exploratory.
	ScanRestarts int
	// Restarts for the final clustering. Higher, to stabilize centroids.
	FinalRestarts int
	// Cluster ids to keep in the assembled table. Empty keeps all.
	ClusterSubset []int
	// Floss code to drop from the assembled table, usually the fabric
	// background. Empty drops nothing.
	ExcludeCode string
	// Oracle resolves centroids to reference colors. Nil selects the
	// built-in floss table.
	Oracle palette.Oracle
}

func DefaultOptions() Options {
	return Options{
		ScanMin:       2,
		ScanMax:       12,
		ScanRestarts:  DefaultScanRestarts,
		FinalRestarts: DefaultFinalRestarts,
	}
}

// Pattern runs the full quantization pipeline over one source image and
// holds every stage's output in a named field. Each stage consumes only the
// previous stage's field; nothing is shared mutably between stages.
type Pattern struct {
	InputImage image.Image

	Pixels     []Pixel
	Trials     []Trial
	Clustering *FinalClustering
	Matches    []palette.Match
	Labeled    []LabeledPixel
}

func NewPattern(input image.Image) *Pattern {
	return &Pattern{InputImage: input}
}

// Build runs every stage in order at the operator-chosen cluster count k.
func (p *Pattern) Build(k int, opt Options) error {
	if opt.Oracle == nil {
		opt.Oracle = palette.DefaultFloss()
	}

	p.Pixels = PixelsFromImage(p.InputImage)
	log.WithFields(logrus.Fields{"pixels": len(p.Pixels)}).Info("pixel table built")

	if opt.ScanMin != 0 || opt.ScanMax != 0 {
		if k < opt.ScanMin || k > opt.ScanMax {
			return fmt.Errorf("build: k=%d outside scan range [%d,%d]: %w",
				k, opt.ScanMin, opt.ScanMax, ErrInvalidKRange)
		}
		trials, err := Scan(p.Pixels, opt.ScanMin, opt.ScanMax, opt.ScanRestarts)
		if err != nil {
			return err
		}
		p.Trials = trials
	}

	fc, err := Cluster(p.Pixels, k, opt.FinalRestarts)
	if err != nil {
		return err
	}
	p.Clustering = fc
	log.WithFields(logrus.Fields{"k": k, "wss": fc.TotalWithinSS}).Info("final clustering complete")

	matches, err := palette.Resolve(fc.Centroids, opt.Oracle)
	if err != nil {
		return err
	}
	p.Matches = matches

	labeled, err := Assemble(fc, matches, opt.ClusterSubset, opt.ExcludeCode)
	if err != nil {
		return err
	}
	p.Labeled = labeled
	log.WithFields(logrus.Fields{"rows": len(labeled)}).Info("pattern table assembled")
	return nil
}
