package repository

import "errors"

// Storage-level sentinel errors. Implementations map driver errors to these
// so services can translate them into business outcomes.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)
