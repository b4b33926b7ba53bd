package stitchkit

import "errors"

// Error kinds surfaced by the pipeline. Stage code wraps these with the
// failing stage name via fmt.Errorf("%w"), so callers can match them with
// errors.Is and still see where the invariant broke.
var (
	// ErrInvalidImageFormat reports a source grid that does not carry
	// exactly three color channels per pixel.
	ErrInvalidImageFormat = errors.New("image grid must expose exactly 3 color channels")

	// ErrInvalidKRange reports a cluster count outside the valid or
	// configured bounds.
	ErrInvalidKRange = errors.New("cluster count outside the configured range")

	// ErrEmptyCluster reports that every clustering restart produced a
	// cluster with no assigned pixels.
	ErrEmptyCluster = errors.New("k-means produced a cluster with no pixels")
)
