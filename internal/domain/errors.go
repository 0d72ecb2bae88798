package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("name already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoBillableItems = errors.New("no billable items")
)
