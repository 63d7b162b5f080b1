package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotAnalyzed     = errors.New("analysis has not been run")
	ErrUnknownEmployee = errors.New("unknown employee id")
	ErrUnknownRole     = errors.New("unknown role id")
)
