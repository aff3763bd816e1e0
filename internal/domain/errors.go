package domain

import "errors"

var (
	ErrInvalidCompletion = errors.New("invalid completion status")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrNetwork           = errors.New("network error")
	ErrReflectionInvalid = errors.New("reflection is invalid")
	ErrScoreAlreadySet   = errors.New("efficiency score already set")
	ErrSessionNotFound   = errors.New("session not found")
	ErrStorage           = errors.New("storage error")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
