package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("record already exists")
	ErrReferenced     = errors.New("record is referenced by another record")
	ErrMatchCompleted = errors.New("match is completed")
	ErrLimitReached   = errors.New("record limit reached")
)
