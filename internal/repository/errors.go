package repository

import "errors"

// ErrNotFound is returned by storage when a key has never been written.
var ErrNotFound = errors.New("not found")
