package model

import "errors"

// Sentinel kinds for matrix construction errors.
var (
	ErrEmptyPairID   = errors.New("gap result is missing an employee or role id")
	ErrDuplicatePair = errors.New("gap result already recorded for this pair")
)
