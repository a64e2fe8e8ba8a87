package attrval

import "errors"

// Encoding failures form a closed set of error kinds. Callers branch
// with [errors.Is]; every error returned by Encode wraps exactly one of
// these sentinels.
var (
	// ErrEmptyString is returned when encoding a zero-length string.
	// The wire format has no representation for an empty string value.
	ErrEmptyString = errors.New("empty string")

	// ErrEmptySet is returned when encoding a set with no members.
	ErrEmptySet = errors.New("empty set")

	// ErrHeterogeneousSet is returned when a set's members do not all
	// share the same scalar kind.
	ErrHeterogeneousSet = errors.New("set members must share one scalar kind")

	// ErrUnsupportedType is returned for values outside the supported
	// scalar and set kinds.
	ErrUnsupportedType = errors.New("unsupported value type")
)
