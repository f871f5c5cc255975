package delta

import "errors"

// Sentinel errors of this package. Callers distinguish them with
// errors.Is; none of them are retried internally. All but
// ErrInvalidArgument are returned as error values.
var (
	// ErrMalformedOperation is returned when JSON input lacks a recognized
	// insert/delete/retain key, a payload length disagrees with its text,
	// or a stored length is negative or non-finite.
	ErrMalformedOperation = errors.New("delta: malformed operation")

	// ErrInvalidArgument is the panic value of the chaining builder
	// methods Delete and Retain when they receive a negative count.
	ErrInvalidArgument = errors.New("delta: invalid argument")

	// ErrConcurrentModification is returned by a DeltaIterator when the
	// underlying Delta was mutated after the iterator was created.
	ErrConcurrentModification = errors.New("delta: concurrent modification")

	// ErrUnreachableState guards branches that earlier filtering should
	// have made impossible. Seeing it surfaced means a bug in this
	// package, never a caller mistake.
	ErrUnreachableState = errors.New("delta: unreachable state")
)
