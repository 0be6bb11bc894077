package trial

import (
	"errors"
	"fmt"
)

// ErrNotInstantiable is returned when an abstract record kind is constructed
// directly instead of through its concrete leaf factories.
var ErrNotInstantiable = errors.New("abstract record kind cannot be instantiated directly")

// ErrNotImplementedFamily is returned when a result family is used without
// the per-run fields its extension requires.
var ErrNotImplementedFamily = errors.New("result family extension fields are missing")

// ErrNilRunSet is returned when a result is constructed without a batch.
var ErrNilRunSet = errors.New("nil run set")

// ShapeError reports a per-run field whose length (or row count) does not
// match the authoritative run count of the batch.
type ShapeError struct {
	Field string
	Want  int
	Got   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid shape for %s: expected length %d, got %d", e.Field, e.Want, e.Got)
}

// IntervalError reports a malformed credible-interval pair or a ratio entry
// inconsistent with its interval.
type IntervalError struct {
	Field  string
	Index  int
	Reason string
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid interval in %s[%d]: %s", e.Field, e.Index, e.Reason)
}

// SeedError reports a seed value that is not representable as a whole number.
type SeedError struct {
	Value float64
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("invalid seed %v: must be an integral value", e.Value)
}
