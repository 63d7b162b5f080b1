package repository

import "errors"

// Sentinel kinds for result store errors.
var (
	ErrEmptyResultID   = errors.New("result missing employee or role id")
	ErrDuplicateResult = errors.New("result already stored for pair")
)
