package gapcalc

import "errors"

// Configuration errors are fatal and surfaced to the caller; they are never
// auto-corrected beyond the documented weight renormalization.
var (
	ErrMissingWeight    = errors.New("weight configuration missing required key")
	ErrMissingThreshold = errors.New("band threshold configuration missing required key")
)
