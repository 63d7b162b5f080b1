package ranking

import "errors"

// ErrNilMatrix is returned when rankings are requested before a compatibility
// matrix has been built. An empty matrix is fine; a missing one is a caller
// contract violation.
var ErrNilMatrix = errors.New("compatibility matrix not built")
