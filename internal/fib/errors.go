package fib

import "errors"

// Domain errors for sequence generation.
var (
	// ErrTooFewTerms indicates a requested sequence shorter than the two seed terms.
	ErrTooFewTerms = errors.New("fib: sequence needs at least 2 terms")

	// ErrTooManyTerms indicates a requested sequence that would overflow int64.
	ErrTooManyTerms = errors.New("fib: term count exceeds int64 range (max 92)")

	// ErrIndexOutOfRange indicates a term index outside the generated sequence.
	ErrIndexOutOfRange = errors.New("fib: term index out of range")
)
