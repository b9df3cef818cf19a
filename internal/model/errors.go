package model

import "errors"

// Errors returned by Document operations. Operations wrap them with context,
// so compare with errors.Is.
var (
	ErrInvalidDimension    = errors.New("invalid dimension")
	ErrDuplicateName       = errors.New("duplicate region name")
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnresolvedReference = errors.New("unresolved region reference")
	ErrInvalidParameter    = errors.New("invalid parameter")
)
