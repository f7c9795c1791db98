package repository

import "errors"

// ErrDuplicateSlug is returned when an insert violates the unique
// organization slug index
var ErrDuplicateSlug = errors.New("slug already exists")
