package entities

import "errors"

// Caller errors: raised by services before any store access and mapped
// to client-error responses at the transport boundary.
var (
	// ErrIdentifierRequired indicates an empty entity identifier argument.
	ErrIdentifierRequired = errors.New("identifier is required")
	// ErrWorldIDRequired indicates an empty world id argument.
	ErrWorldIDRequired = errors.New("world id is required")
)
