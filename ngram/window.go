package ngram

// Window is a zero-copy view of n tokens inside a backing sequence, sampled
// every stride elements starting at start. It borrows the backing slice
// instead of copying tokens, so building one is free regardless of order.
// The backing slice must outlive every lookup that references the window.
type Window[T Token] struct {
	data   []T
	start  int
	stride int
	n      int
}

// NewWindow returns a window of n tokens over data, sampled at the given
// stride from start. A stride of 1 is a contiguous n-gram.
func NewWindow[T Token](data []T, start, stride, n int) Window[T] {
	return Window[T]{data: data, start: start, stride: stride, n: n}
}

// Len returns the window's order (its token count).
func (w Window[T]) Len() int { return w.n }

// At returns the i-th token of the window.
func (w Window[T]) At(i int) T { return w.data[w.start+i*w.stride] }

// Hash computes the running hash of the full window from scratch. The scanner
// maintains the hash incrementally instead; this is used at pool build time
// and in tests.
func (w Window[T]) Hash() uint64 {
	var h uint64
	for i := 0; i < w.n; i++ {
		h = Combine(h, HashToken(w.At(i)))
	}
	return h
}
