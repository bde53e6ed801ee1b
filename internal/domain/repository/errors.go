package repository

import "errors"

// Sentinel errors shared by all repository implementations so the
// application layer can branch on them without importing infrastructure.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)
