package errs

import "errors"

var (
	ErrDatabase         = errors.New("E0001: database error")
	ErrStoreUnavailable = errors.New("E0002: database not configured")
	ErrInvalidID        = errors.New("E0003: invalid ID")
	ErrNotFound         = errors.New("E0004: not found")
	ErrEmptyBatch       = errors.New("E0005: no entries to mark")
	ErrValidation       = errors.New("E0006: validation failed")
)
