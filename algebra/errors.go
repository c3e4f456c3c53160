package algebra

import "errors"

// ErrLawViolation signals that a descriptor breaks one of its algebraic laws
// for at least one tuple of sample values.
var ErrLawViolation = errors.New("algebra: law violation")
