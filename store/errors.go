package store

import "errors"

var (
	ErrNotFound = errors.New("key not registered")
	ErrCorrupt  = errors.New("corrupt registry entry")
)
