package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_RetainsAllOrders(t *testing.T) {
	// Unigrams 1,2 then bigrams (1,2) and (2,3).
	vocab := []int64{1, 2, 1, 2, 2, 3}
	pool, err := NewPool(vocab, []int{0, 2}, 1, 2, true)
	require.NoError(t, err)

	assert.Equal(t, 4, pool.Len())
	assert.Equal(t, 4, pool.Total())
	assert.Equal(t, 3, pool.MaxID())

	input := []int64{1, 2, 3}

	w := NewWindow(input, 0, 1, 1) // 1
	id, ok := pool.Lookup(w.Hash(), w)
	require.True(t, ok)
	assert.Equal(t, 0, id)

	w = NewWindow(input, 0, 1, 2) // (1,2)
	id, ok = pool.Lookup(w.Hash(), w)
	require.True(t, ok)
	assert.Equal(t, 2, id)

	w = NewWindow(input, 1, 1, 2) // (2,3)
	id, ok = pool.Lookup(w.Hash(), w)
	require.True(t, ok)
	assert.Equal(t, 3, id)
}

func TestNewPool_SkippedOrdersKeepIDGaps(t *testing.T) {
	// Same vocabulary, but only bigrams retained: the two unigram slots
	// still consume ids 0 and 1 so external per-id tables stay aligned.
	vocab := []int64{1, 2, 1, 2, 2, 3}
	pool, err := NewPool(vocab, []int{0, 2}, 2, 2, false)
	require.NoError(t, err)

	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, 4, pool.Total())

	input := []int64{1, 2}
	w := NewWindow(input, 0, 1, 2)
	id, ok := pool.Lookup(w.Hash(), w)
	require.True(t, ok)
	assert.Equal(t, 2, id)

	// The unigram is not retained.
	w = NewWindow(input, 0, 1, 1)
	_, ok = pool.Lookup(w.Hash(), w)
	assert.False(t, ok)
}

func TestNewPool_DuplicateSameOrder(t *testing.T) {
	vocab := []string{"a", "b", "a"}
	_, err := NewPool(vocab, []int{0}, 1, 1, true)
	require.Error(t, err)

	var dup *ErrDuplicateNGram
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Order)
}

func TestNewPool_EqualSequencesAcrossOrders(t *testing.T) {
	// The unigram "a" and the bigram ("a","a") may collide on content but
	// differ in order; that is not a duplicate.
	vocab := []string{"a", "a", "a"}
	pool, err := NewPool(vocab, []int{0, 1}, 1, 2, true)
	require.NoError(t, err)
	assert.Equal(t, 2, pool.Len())
}

func TestNewPool_RunBounds(t *testing.T) {
	vocab := []int64{1, 2}

	_, err := NewPool(vocab, []int{0, 5}, 1, 2, true)
	var bounds *ErrRunBounds
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, 2, bounds.Order)

	_, err = NewPool(vocab, []int{1, 0}, 1, 2, true)
	require.ErrorAs(t, err, &bounds)
}

func TestNewPool_RunNotWhole(t *testing.T) {
	// Three tokens cannot compose whole bigrams.
	vocab := []int64{1, 2, 3}
	_, err := NewPool(vocab, []int{0, 0}, 2, 2, false)
	require.Error(t, err)

	var whole *ErrRunNotWhole
	require.ErrorAs(t, err, &whole)
	assert.Equal(t, 2, whole.Order)
}

func TestNewPool_EmptyRun(t *testing.T) {
	// An empty unigram run is fine; ids start at the bigram run.
	vocab := []string{"a", "b"}
	pool, err := NewPool(vocab, []int{0, 0}, 2, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 1, pool.Total())
	assert.Equal(t, 0, pool.MaxID())
}

func TestNewPool_NothingRetained(t *testing.T) {
	vocab := []int64{1, 2}
	pool, err := NewPool(vocab, []int{0}, 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 2, pool.Len())

	// Retention rule: all=false keeps only MaxOrder. With MaxOrder=2 and a
	// unigram-only vocabulary nothing is retained but ids still advance.
	pool, err = NewPool(vocab, []int{0, 2}, 2, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 2, pool.Total())
	assert.Equal(t, -1, pool.MaxID())
}

func TestPool_LookupWrongOrderMisses(t *testing.T) {
	vocab := []string{"x", "y"}
	pool, err := NewPool(vocab, []int{0, 0}, 2, 2, false)
	require.NoError(t, err)

	input := []string{"x", "y"}
	bigram := NewWindow(input, 0, 1, 2)
	_, ok := pool.Lookup(bigram.Hash(), bigram)
	require.True(t, ok)

	// Same hash bucket probe with a mismatching order finds nothing.
	unigram := NewWindow(input, 0, 1, 1)
	_, ok = pool.Lookup(bigram.Hash(), unigram)
	assert.False(t, ok)
}
