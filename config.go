package ngramvec

import "fmt"

// Mode selects the weighting applied to accumulated n-gram counts.
type Mode int

const (
	// ModeUnknown is the zero value and never valid.
	ModeUnknown Mode = iota

	// ModeTF emits raw term-frequency counts.
	ModeTF

	// ModeIDF emits presence indicators, scaled by the configured weights
	// when present.
	ModeIDF

	// ModeTFIDF emits counts scaled by the configured weights. Without
	// weights it degenerates to ModeTF; this mirrors the reference kernel
	// and is deliberate.
	ModeTFIDF
)

// ParseMode converts the textual mode attribute into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "TF":
		return ModeTF, nil
	case "IDF":
		return ModeIDF, nil
	case "TFIDF":
		return ModeTFIDF, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeTF:
		return "TF"
	case ModeIDF:
		return "IDF"
	case ModeTFIDF:
		return "TFIDF"
	default:
		return "unknown"
	}
}

// Config describes a vectorizer. It is read once by New; the vectorizer never
// mutates or retains write access to it afterwards.
//
// The vocabulary is a flat token sequence partitioned into per-order runs:
// NGramCounts[i] is the start offset of the run holding the (i+1)-grams. Each
// run lists its n-grams back to back, so a run of k-grams must have a length
// divisible by k. Every n-gram of the vocabulary owns one slot of a dense id
// space in vocabulary order; NGramIndexes and Weights are indexed by that id
// space.
type Config struct {
	// Mode is the weighting applied to the accumulated counts. Required.
	Mode Mode

	// MinOrder (M) is the smallest n-gram order to retain. Must be positive.
	MinOrder int

	// MaxOrder (N) is the largest n-gram order to retain. Must be at least
	// MinOrder.
	MaxOrder int

	// Skips (S) is the number of skip strides to try beyond contiguous
	// windows. Zero means contiguous n-grams only.
	Skips int

	// All retains every order in [MinOrder, MaxOrder]; when false only
	// MaxOrder n-grams are retained.
	All bool

	// NGramCounts holds the per-order start offsets into the vocabulary,
	// one entry per order starting at order 1. Required.
	NGramCounts []int

	// NGramIndexes maps every pool id to its output bin. All entries must
	// be non-negative; the output size is the largest entry plus one.
	// Required.
	NGramIndexes []int

	// Weights optionally scales IDF and TFIDF output. When supplied it must
	// have the same length as NGramIndexes and cover every output bin.
	Weights []float32

	// PoolStrings is the string form of the vocabulary.
	PoolStrings []string

	// PoolInt64s is the integer form of the vocabulary. Exactly one of
	// PoolStrings and PoolInt64s must be supplied.
	PoolInt64s []int64
}

// Validate checks every configuration constraint that does not require
// building the pool. New calls it first; a failed validation makes the
// configuration unusable until corrected.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTF, ModeIDF, ModeTFIDF:
	default:
		return ErrInvalidMode
	}

	if c.MinOrder <= 0 {
		return ErrInvalidMinOrder
	}
	if c.MaxOrder < c.MinOrder {
		return ErrInvalidOrderRange
	}
	if c.Skips < 0 {
		return ErrInvalidSkips
	}

	if len(c.NGramCounts) == 0 {
		return ErrEmptyNGramCounts
	}
	if c.MinOrder > len(c.NGramCounts) {
		return &ErrOrderOutOfCounts{Order: c.MinOrder, Orders: len(c.NGramCounts)}
	}
	if c.MaxOrder > len(c.NGramCounts) {
		return &ErrOrderOutOfCounts{Order: c.MaxOrder, Orders: len(c.NGramCounts)}
	}

	if len(c.NGramIndexes) == 0 {
		return ErrEmptyNGramIndexes
	}
	for _, idx := range c.NGramIndexes {
		if idx < 0 {
			return ErrNegativeNGramIndex
		}
	}

	if len(c.Weights) > 0 {
		if len(c.Weights) != len(c.NGramIndexes) {
			return &ErrWeightLength{Indexes: len(c.NGramIndexes), Weights: len(c.Weights)}
		}
		if bins := c.outputSize(); len(c.Weights) < bins {
			return &ErrWeightCoverage{Bins: bins, Weights: len(c.Weights)}
		}
	}

	switch {
	case len(c.PoolStrings) == 0 && len(c.PoolInt64s) == 0:
		return ErrEmptyPool
	case len(c.PoolStrings) > 0 && len(c.PoolInt64s) > 0:
		return ErrAmbiguousPool
	}

	return nil
}

// outputSize is the largest bin index plus one.
func (c *Config) outputSize() int {
	max := 0
	for _, idx := range c.NGramIndexes {
		if idx > max {
			max = idx
		}
	}
	return max + 1
}
