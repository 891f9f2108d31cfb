package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrInsufficientPool      = errors.New("insufficient candidate pool")
	ErrChallengeCompleted    = errors.New("daily challenge already completed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
