package palette

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgb2xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	lab2xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

func toLab(c colorful.Color) chromath.Lab {
	xyz := rgb2xyz.Convert(chromath.RGB{c.R, c.G, c.B})
	return lab2xyz.Invert(xyz)
}

// Floss resolves colors against a fixed floss table by CIEDE2000 distance
// in Lab space. The zero value is unusable; build one with NewFloss or use
// DefaultFloss.
type Floss struct {
	entries []Entry
	labs    []chromath.Lab
}

// NewFloss builds an oracle over the given entries, precomputing Lab
// coordinates. A malformed hex or an empty table fails with ErrLookup.
func NewFloss(entries []Entry) (*Floss, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("palette: empty reference table: %w", ErrLookup)
	}
	f := &Floss{entries: entries, labs: make([]chromath.Lab, len(entries))}
	for i, e := range entries {
		c, err := colorful.Hex(e.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette: entry %s has malformed hex %q: %w", e.Code, e.Hex, ErrLookup)
		}
		f.labs[i] = toLab(c)
	}
	return f, nil
}

// DefaultFloss returns the oracle over the built-in floss table.
func DefaultFloss() *Floss {
	f, err := NewFloss(flossColors)
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}
	return f
}

// Nearest returns the entry with the smallest CIEDE2000 distance to c.
// Distance ties keep the earliest table entry, so lookups are
// deterministic for a fixed table.
func (f *Floss) Nearest(c colorful.Color) (Entry, error) {
	if len(f.entries) == 0 {
		return Entry{}, fmt.Errorf("palette: no reference colors loaded: %w", ErrLookup)
	}
	target := toLab(c.Clamped())
	best := 0
	bestD := math.Inf(1)
	for i, lab := range f.labs {
		if d := deltae.CIE2000(target, lab, &deltae.KLChDefault); d < bestD {
			bestD = d
			best = i
		}
	}
	return f.entries[best], nil
}
