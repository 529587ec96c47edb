package ngramvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned when the weighting mode is missing or unknown.
	ErrInvalidMode = errors.New("mode must be one of TF, IDF or TFIDF")

	// ErrInvalidMinOrder is returned when MinOrder is not positive.
	ErrInvalidMinOrder = errors.New("minimum n-gram order must be positive")

	// ErrInvalidOrderRange is returned when MaxOrder is below MinOrder.
	ErrInvalidOrderRange = errors.New("maximum n-gram order must be at least the minimum order")

	// ErrInvalidSkips is returned when the skip count is negative.
	ErrInvalidSkips = errors.New("skip count must be non-negative")

	// ErrEmptyNGramCounts is returned when no order boundaries are supplied.
	ErrEmptyNGramCounts = errors.New("non-empty n-gram counts are required")

	// ErrEmptyNGramIndexes is returned when no bin indexes are supplied.
	ErrEmptyNGramIndexes = errors.New("non-empty n-gram indexes are required")

	// ErrNegativeNGramIndex is returned when a bin index is negative.
	ErrNegativeNGramIndex = errors.New("negative n-gram index values are not allowed")

	// ErrEmptyPool is returned when neither vocabulary form is supplied.
	ErrEmptyPool = errors.New("a non-empty string or int64 vocabulary is required")

	// ErrAmbiguousPool is returned when both vocabulary forms are supplied.
	ErrAmbiguousPool = errors.New("exactly one of the string and int64 vocabularies may be supplied")
)

// ErrOrderOutOfCounts indicates an n-gram order outside the boundary list.
type ErrOrderOutOfCounts struct {
	Order  int
	Orders int
}

func (e *ErrOrderOutOfCounts) Error() string {
	return fmt.Sprintf("order %d must be inbounds of the %d supplied n-gram counts", e.Order, e.Orders)
}

// ErrWeightLength indicates a weight list whose length differs from the
// n-gram index list.
type ErrWeightLength struct {
	Indexes int
	Weights int
}

func (e *ErrWeightLength) Error() string {
	return fmt.Sprintf("weights and indexes must have equal size: %d weights, %d indexes", e.Weights, e.Indexes)
}

// ErrWeightCoverage indicates a weight list too short to cover every output
// bin.
type ErrWeightCoverage struct {
	Bins    int
	Weights int
}

func (e *ErrWeightCoverage) Error() string {
	return fmt.Sprintf("weights must cover every output bin: %d bins, %d weights", e.Bins, e.Weights)
}

// ErrIndexSpace indicates a retained pool id with no entry in the bin index
// list.
type ErrIndexSpace struct {
	MaxID   int
	Indexes int
}

func (e *ErrIndexSpace) Error() string {
	return fmt.Sprintf("pool id %d exceeds the %d supplied n-gram indexes", e.MaxID, e.Indexes)
}

// ErrOutputLength indicates a destination buffer whose length differs from
// the configured output size.
type ErrOutputLength struct {
	Expected int
	Actual   int
}

func (e *ErrOutputLength) Error() string {
	return fmt.Sprintf("output length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrUnsupportedInput indicates an input element kind the vectorizer cannot
// scan. It is an operation error: the call fails, the vectorizer stays usable.
type ErrUnsupportedInput struct {
	Kind string
}

func (e *ErrUnsupportedInput) Error() string {
	return fmt.Sprintf("unsupported input element kind: %s", e.Kind)
}
