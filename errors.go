package vetspan

import "errors"

var (
	// ErrOutOfBounds reports a raw offset strictly beyond the
	// one-past-the-end position of the container.
	ErrOutOfBounds = errors.New("vetspan: offset out of bounds")

	// ErrInvalid reports a raw offset that is in bounds but does not
	// start an item (e.g. the second byte of a multi-byte codepoint).
	ErrInvalid = errors.New("vetspan: offset not on an item boundary")
)
