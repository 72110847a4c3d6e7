package domain

import "errors"

// Storage errors. Repositories wrap these with context.
var (
	ErrDuplicateEmail      = errors.New("email already in use")
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violated")
	ErrDatabase            = errors.New("database error")
)
