package catalog

import "errors"

// Sentinel kinds for catalog validation errors.
var (
	ErrMissingID    = errors.New("missing id")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrUnknownSkill = errors.New("unknown skill id")
)
