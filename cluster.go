package stitchkit

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var log = logrus.StandardLogger()

const (
	// DefaultScanRestarts keeps the exploratory scan cheap.
	DefaultScanRestarts = 4
	// DefaultFinalRestarts stabilizes the clustering the pattern is cut from.
	DefaultFinalRestarts = 20

	// A restart that degenerates into an empty cluster is discarded and
	// re-drawn; the total attempt budget is this factor times the restart
	// count before ErrEmptyCluster surfaces.
	emptyRetryFactor = 3
)

// Trial records the fit quality of one scanned cluster count. The trial
// sequence across a k range is the scree data an operator reads to pick k;
// nothing downstream consumes it.
type Trial struct {
	K             int
	Centroids     []colorful.Color
	TotalWithinSS float64
	TotalSS       float64
}

// Explained is the share of total color variance captured at this k.
func (t Trial) Explained() float64 {
	if t.TotalSS == 0 {
		return 1
	}
	return 1 - t.TotalWithinSS/t.TotalSS
}

// FinalClustering is the chosen-k result: centroid colors keyed by cluster
// id and a label for every pixel. Ids run 1..K, assigned darkest centroid
// first (ties broken by descending population), so two runs over the same
// image number comparable clusters the same way regardless of which random
// restart won. Ids are only stable within one run.
type FinalClustering struct {
	K             int
	Centroids     map[int]colorful.Color
	Labels        map[image.Point]int
	Sizes         map[int]int
	TotalWithinSS float64
}

// pixelObservation feeds one pixel to the clusterer. Coordinates exposes
// only the color channels, so clustering runs in RGB space while the grid
// position rides along for label recovery afterwards.
type pixelObservation struct {
	p Pixel
}

func (o pixelObservation) Coordinates() clusters.Coordinates {
	return clusters.Coordinates{o.p.R, o.p.G, o.p.B}
}

func (o pixelObservation) Distance(point clusters.Coordinates) float64 {
	dr := o.p.R - point[0]
	dg := o.p.G - point[1]
	db := o.p.B - point[2]
	return dr*dr + dg*dg + db*db
}

func observe(pixels []Pixel) clusters.Observations {
	obs := make(clusters.Observations, len(pixels))
	for i, p := range pixels {
		obs[i] = pixelObservation{p}
	}
	return obs
}

// Scan runs the clusterer for every k in [kMin, kMax] and reports one Trial
// per k in ascending order. Restarts stay low here: the scan only feeds the
// scree diagnostic, not the final pattern.
func Scan(pixels []Pixel, kMin, kMax, restarts int) ([]Trial, error) {
	if kMin < 2 || kMax < kMin || kMax > len(pixels) {
		return nil, fmt.Errorf("scan: k range [%d,%d] invalid for %d pixels: %w",
			kMin, kMax, len(pixels), ErrInvalidKRange)
	}
	if restarts < 1 {
		restarts = DefaultScanRestarts
	}
	obs := observe(pixels)
	tss := totalSumOfSquares(pixels)
	trials := make([]Trial, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		cc, wss, err := bestPartition(obs, k, restarts)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		orderClusters(cc)
		centroids := make([]colorful.Color, len(cc))
		for i, c := range cc {
			centroids[i] = centerColor(c.Center)
		}
		trials = append(trials, Trial{K: k, Centroids: centroids, TotalWithinSS: wss, TotalSS: tss})
		log.WithFields(logrus.Fields{"k": k, "wss": wss}).Debug("scan trial complete")
	}
	return trials, nil
}

// Cluster partitions the pixel table into k color clusters, keeping the
// restart with the lowest within-cluster sum of squares. Initialization is
// randomized, so repeated calls may settle in different local optima; the
// luminance ordering of ids keeps results comparable, not identical.
// Restarts should be higher than Scan's since this result drives the
// actual pattern.
func Cluster(pixels []Pixel, k, restarts int) (*FinalClustering, error) {
	if k < 2 || k > len(pixels) {
		return nil, fmt.Errorf("cluster: k=%d with %d pixels: %w", k, len(pixels), ErrInvalidKRange)
	}
	if restarts < 1 {
		restarts = DefaultFinalRestarts
	}
	cc, wss, err := bestPartition(observe(pixels), k, restarts)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	orderClusters(cc)

	fc := &FinalClustering{
		K:             k,
		Centroids:     make(map[int]colorful.Color, k),
		Labels:        make(map[image.Point]int, len(pixels)),
		Sizes:         make(map[int]int, k),
		TotalWithinSS: wss,
	}
	for i, c := range cc {
		id := i + 1
		fc.Centroids[id] = centerColor(c.Center)
		fc.Sizes[id] = len(c.Observations)
		for _, o := range c.Observations {
			p := o.(pixelObservation).p
			fc.Labels[image.Point{X: p.X, Y: p.Y}] = id
		}
	}
	return fc, nil
}

// bestPartition keeps the restart with the lowest within-cluster sum of
// squares; the first restart to reach the best value wins ties, so running
// restarts in another order or in parallel later cannot change the result
// beyond the randomness already present.
func bestPartition(obs clusters.Observations, k, restarts int) (clusters.Clusters, float64, error) {
	km := kmeans.New()
	var best clusters.Clusters
	bestWSS := math.Inf(1)
	kept := 0
	for attempt := 0; kept < restarts && attempt < restarts*emptyRetryFactor; attempt++ {
		cc, err := km.Partition(obs, k)
		if err != nil {
			return nil, 0, fmt.Errorf("k=%d: %w", k, err)
		}
		if isDegenerate(cc, len(obs)) {
			log.WithFields(logrus.Fields{"k": k, "attempt": attempt}).
				Debug("discarding degenerate restart")
			continue
		}
		kept++
		if wss := withinSumOfSquares(cc); wss < bestWSS {
			bestWSS = wss
			best = cc
		}
	}
	if kept == 0 {
		return nil, 0, fmt.Errorf("k=%d: every restart degenerated: %w", k, ErrEmptyCluster)
	}
	return best, bestWSS, nil
}

// isDegenerate reports whether the clusters fail to form a true partition
// of the dataset. The clusterer papers over an empty cluster by assigning
// it a copy of a random observation without removing the original, so a
// degenerate run shows up either as a zero-length cluster or as more
// assignments than observations.
func isDegenerate(cc clusters.Clusters, n int) bool {
	total := 0
	for _, c := range cc {
		if len(c.Observations) == 0 {
			return true
		}
		total += len(c.Observations)
	}
	return total != n
}

func withinSumOfSquares(cc clusters.Clusters) float64 {
	var wss float64
	for _, c := range cc {
		for _, o := range c.Observations {
			wss += o.Distance(c.Center)
		}
	}
	return wss
}

// totalSumOfSquares is the squared distance of every pixel to the mean
// color, summed over the three channels. It depends only on the dataset,
// not on k.
func totalSumOfSquares(pixels []Pixel) float64 {
	n := len(pixels)
	if n < 2 {
		return 0
	}
	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	for i, p := range pixels {
		rs[i], gs[i], bs[i] = p.R, p.G, p.B
	}
	nf := float64(n - 1)
	return stat.Variance(rs, nil)*nf + stat.Variance(gs, nil)*nf + stat.Variance(bs, nil)*nf
}

func centerColor(c clusters.Coordinates) colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped()
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// orderClusters sorts dark to bright so cluster ids stay comparable across
// runs with different random restarts. Equal luminance goes to the larger
// cluster first.
func orderClusters(cc clusters.Clusters) {
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		la := luminance(centerColor(a.Center))
		lb := luminance(centerColor(b.Center))
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return len(b.Observations) - len(a.Observations)
	})
}
