package domain

import "errors"

// Storage-level errors shared by repositories and services.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	ErrConflict  = errors.New("record changed concurrently")
)
