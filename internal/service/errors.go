package service

import "errors"

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrTestNotFound       = errors.New("test not found")
	ErrResultNotFound     = errors.New("result not found")
	ErrDuplicateTestID    = errors.New("test with this id already exists")
	ErrDuplicateAttemptID = errors.New("attempt id already exists")
)
