package errorvalues

import "errors"

var (
	ErrAccountExists     = errors.New("account with such username already exists")
	ErrAccountNotFound   = errors.New("account doesn't exist")
	ErrWrongCredentials  = errors.New("wrong username or password")
	ErrMoodEntryNotFound = errors.New("mood entry doesn't exist")
	ErrWrongOwner        = errors.New("mood entry belongs to another user")
	ErrNothingRemembered = errors.New("no remembered login")
	ErrInvalidToken      = errors.New("invalid token")
)

var (
	// ErrKeyNotFound is returned by key-value backends for absent keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrStorageFailure classifies I/O and serialization failures at the storage boundary.
	ErrStorageFailure = errors.New("storage failure")
	// ErrValidation marks input rejected before anything is persisted.
	ErrValidation = errors.New("validation failed")
)
