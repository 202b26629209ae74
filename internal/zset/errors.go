package zset

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes a negative
	// offset to RangeByScoreWithOptions.
	ErrInvalidArgument = errors.New("zset: invalid argument")

	// ErrEndOfSequence is returned by an Iterator's Next once the
	// sequence is exhausted.
	ErrEndOfSequence = errors.New("zset: end of sequence")

	// ErrInvalidIteratorState is returned by Iterator.Remove when Next
	// has not been called since construction or since the last Remove.
	ErrInvalidIteratorState = errors.New("zset: Remove called without a preceding Next")

	// ErrConcurrentModification is returned by Iterator.Next or
	// Iterator.Remove when the container was mutated through a path
	// other than that same iterator's Remove since the iterator was
	// created or last advanced.
	ErrConcurrentModification = errors.New("zset: container modified since iterator was created")
)
