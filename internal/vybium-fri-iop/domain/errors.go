package domain

import "errors"

// ErrSizeExceedsTwoAdicity is returned when a requested domain size exceeds
// the field's 2-adicity 2^S, per spec §7.
var ErrSizeExceedsTwoAdicity = errors.New("domain: requested size exceeds field two-adicity")
