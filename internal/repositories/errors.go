package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a lookup matches nothing,
// regardless of the backing store.
var ErrNotFound = errors.New("record not found")
