package analyzer

import "errors"

// ErrNilMatrix is returned when aggregates are requested before a
// compatibility matrix has been built. Empty matrices and catalogs aggregate
// to zeroed results instead.
var ErrNilMatrix = errors.New("compatibility matrix not built")
