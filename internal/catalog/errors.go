package catalog

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrFormat   = errors.New("invalid format")
)
