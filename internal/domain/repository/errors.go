package repository

import "errors"

var (
	// ErrMediaNotFound is returned by metadata adapters when no row matches.
	ErrMediaNotFound = errors.New("media not found")

	// ErrObjectNotFound is returned by blob adapters when the key does not exist.
	ErrObjectNotFound = errors.New("object not found")
)
