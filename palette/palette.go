// Package palette maps arbitrary colors onto a fixed, finite reference
// palette of embroidery floss colors.
package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrLookup reports that the oracle could not resolve a color.
var ErrLookup = errors.New("palette lookup failed")

// Entry is one supported color in the reference palette. Code and Hex are
// opaque identifiers owned by the palette database.
type Entry struct {
	Code string
	Name string
	Hex  string
}

// Oracle resolves an arbitrary color to the closest supported palette
// entry. Implementations must be deterministic for a fixed input color.
type Oracle interface {
	Nearest(c colorful.Color) (Entry, error)
}

// Match ties one cluster centroid to its resolved palette entry.
type Match struct {
	ClusterID int
	Centroid  colorful.Color
	Code      string
	Hex       string
}

// Resolve queries the oracle once per centroid and returns one Match per
// cluster id, in ascending id order. Two centroids resolving to the same
// entry both keep their rows: near-duplicate cluster centers are a
// diagnostic the operator inspects, not an error, so Resolve never
// deduplicates.
func Resolve(centroids map[int]colorful.Color, oracle Oracle) ([]Match, error) {
	ids := make([]int, 0, len(centroids))
	for id := range centroids {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	matches := make([]Match, 0, len(ids))
	for _, id := range ids {
		c := centroids[id]
		e, err := oracle.Nearest(c)
		if err != nil {
			return nil, fmt.Errorf("palette: cluster %d (%s): %w", id, c.Hex(), err)
		}
		matches = append(matches, Match{ClusterID: id, Centroid: c, Code: e.Code, Hex: e.Hex})
	}
	return matches, nil
}
