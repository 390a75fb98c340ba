package slotvec

import "errors"

var (
	// ErrMalformedIndex indicates a compact index literal that does not parse
	// back to a (slot, generation) pair: missing separator, non-numeric or
	// negative parts.
	ErrMalformedIndex = errors.New("slotvec: malformed index literal")

	// ErrDuplicateIndex indicates serialized input naming the same slot twice.
	ErrDuplicateIndex = errors.New("slotvec: duplicate slot in serialized input")
)
