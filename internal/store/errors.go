package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrConflict       = errors.New("concurrent modification detected")
)
