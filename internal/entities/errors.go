package entities

import "errors"

// ErrNotFound is returned by repositories when no record matches the requested id.
var ErrNotFound = errors.New("record not found")
