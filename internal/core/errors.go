package core

import "errors"

var (
	// ErrLineNotAvailable means the cursor row does not index an existing line.
	ErrLineNotAvailable = errors.New("line not available")
	// ErrInvalidMove means the edit has no valid effect at the cursor, such as
	// deleting backward at the start of the document.
	ErrInvalidMove = errors.New("move is invalid")
)
