package validator

import "errors"

// ErrInvalidSequencing is returned by Then and Back when the cursor cannot move
// in the requested direction. It signals a mistake in the code building the
// checks, not a validation failure.
var ErrInvalidSequencing = errors.New("invalid branch sequencing")
