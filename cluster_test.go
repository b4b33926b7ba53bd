package stitchkit

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourTonePixels builds a pixel table drawn from four well-separated base
// colors with a little jitter, so clustering has an unambiguous structure.
func fourTonePixels(perTone int) []Pixel {
	bases := [][3]float64{
		{0.95, 0.05, 0.05},
		{0.05, 0.85, 0.10},
		{0.10, 0.10, 0.90},
		{0.90, 0.90, 0.15},
	}
	rng := rand.New(rand.NewSource(42))
	pixels := make([]Pixel, 0, perTone*len(bases))
	for _, base := range bases {
		for i := 0; i < perTone; i++ {
			jitter := func(v float64) float64 {
				j := v + (rng.Float64()-0.5)*0.04
				if j < 0 {
					return 0
				}
				if j > 1 {
					return 1
				}
				return j
			}
			n := len(pixels)
			pixels = append(pixels, Pixel{
				X: n % 16,
				Y: n / 16,
				R: jitter(base[0]),
				G: jitter(base[1]),
				B: jitter(base[2]),
			})
		}
	}
	return pixels
}

func TestClusterTwoColorImage(t *testing.T) {
	pixels := []Pixel{
		{X: 0, Y: 0, R: 1},
		{X: 1, Y: 0, R: 1},
		{X: 0, Y: 1, B: 1},
		{X: 1, Y: 1, B: 1},
	}

	fc, err := Cluster(pixels, 2, 10)
	require.NoError(t, err)
	require.Equal(t, 2, fc.K)
	require.Len(t, fc.Labels, 4)
	assert.Equal(t, 2, fc.Sizes[1])
	assert.Equal(t, 2, fc.Sizes[2])

	// Blue has lower linear luminance than red, so it gets cluster id 1.
	blue := fc.Centroids[1]
	red := fc.Centroids[2]
	assert.InDelta(t, 0.0, blue.R, 1e-6)
	assert.InDelta(t, 1.0, blue.B, 1e-6)
	assert.InDelta(t, 1.0, red.R, 1e-6)
	assert.InDelta(t, 0.0, red.B, 1e-6)

	// Same-colored pixels share a label, different colors do not.
	assert.Equal(t, fc.Labels[image.Point{X: 0, Y: 0}], fc.Labels[image.Point{X: 1, Y: 0}])
	assert.NotEqual(t, fc.Labels[image.Point{X: 0, Y: 0}], fc.Labels[image.Point{X: 0, Y: 1}])

	assert.InDelta(t, 0.0, fc.TotalWithinSS, 1e-9)
}

func TestClusterPartitionsPixels(t *testing.T) {
	pixels := fourTonePixels(16)
	fc, err := Cluster(pixels, 4, 10)
	require.NoError(t, err)

	// Every pixel labeled exactly once with an id in [1,k].
	require.Len(t, fc.Labels, len(pixels))
	total := 0
	for id := 1; id <= fc.K; id++ {
		size := fc.Sizes[id]
		assert.Greater(t, size, 0, "cluster %d is empty", id)
		total += size
	}
	assert.Equal(t, len(pixels), total)
	for _, id := range fc.Labels {
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, fc.K)
	}
}

func TestClusterRejectsBadK(t *testing.T) {
	pixels := fourTonePixels(2)

	_, err := Cluster(pixels, 1, 4)
	require.ErrorIs(t, err, ErrInvalidKRange)

	_, err = Cluster(pixels, len(pixels)+1, 4)
	require.ErrorIs(t, err, ErrInvalidKRange)
}

func TestClusterIdenticalPixelsFails(t *testing.T) {
	// A single repeated color cannot fill two clusters. The clusterer hides
	// the empty cluster by double-assigning a pixel, which must be caught
	// and surfaced rather than returned as an overlapping partition.
	pixels := make([]Pixel, 6)
	for i := range pixels {
		pixels[i] = Pixel{X: i, Y: 0, R: 0.5, G: 0.5, B: 0.5}
	}

	fc, err := Cluster(pixels, 2, 3)
	require.ErrorIs(t, err, ErrEmptyCluster)
	assert.Nil(t, fc)
}

func TestClusterMoreClustersThanDistinctColors(t *testing.T) {
	pixels := []Pixel{
		{X: 0, Y: 0, R: 1},
		{X: 1, Y: 0, R: 1},
		{X: 2, Y: 0, R: 1},
		{X: 0, Y: 1, B: 1},
		{X: 1, Y: 1, B: 1},
		{X: 2, Y: 1, B: 1},
	}

	fc, err := Cluster(pixels, 3, 4)
	require.ErrorIs(t, err, ErrEmptyCluster)
	assert.Nil(t, fc)
}

func TestScanWithinSSMonotone(t *testing.T) {
	pixels := fourTonePixels(16)

	trials, err := Scan(pixels, 2, 5, 8)
	require.NoError(t, err)
	require.Len(t, trials, 4)

	for i, tr := range trials {
		assert.Equal(t, 2+i, tr.K)
		assert.Len(t, tr.Centroids, tr.K)
		assert.Equal(t, trials[0].TotalSS, tr.TotalSS)
		assert.GreaterOrEqual(t, tr.Explained(), 0.0)
		assert.LessOrEqual(t, tr.Explained(), 1.0)
	}
	for i := 1; i < len(trials); i++ {
		assert.LessOrEqual(t, trials[i].TotalWithinSS, trials[i-1].TotalWithinSS+1e-9,
			"wss increased from k=%d to k=%d", trials[i-1].K, trials[i].K)
	}
}

func TestScanRejectsBadRange(t *testing.T) {
	pixels := fourTonePixels(4)

	_, err := Scan(pixels, 1, 3, 4)
	require.ErrorIs(t, err, ErrInvalidKRange)

	_, err = Scan(pixels, 4, 3, 4)
	require.ErrorIs(t, err, ErrInvalidKRange)

	_, err = Scan(pixels, 2, len(pixels)+1, 4)
	require.ErrorIs(t, err, ErrInvalidKRange)
}
