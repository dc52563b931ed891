package reflection

import "errors"

var (
	// ErrMalformedName reports a variable name the introspection grammar
	// cannot place, such as an indexed member with no continuation.
	ErrMalformedName = errors.New("reflection: malformed variable name")

	// ErrOrphanVariable reports a variable whose enclosing block index does
	// not resolve and for which no ungrouped list exists.
	ErrOrphanVariable = errors.New("reflection: variable without parent block")
)
