package ngram

import "fmt"

// ErrRunBounds reports an order whose boundary offsets fall outside the
// vocabulary or run backwards.
type ErrRunBounds struct {
	Order int
}

func (e *ErrRunBounds) Error() string {
	return fmt.Sprintf("n-gram counts out of bounds for %d-grams", e.Order)
}

// ErrRunNotWhole reports an order whose run length does not decompose into
// whole n-grams of that order.
type ErrRunNotWhole struct {
	Order int
}

func (e *ErrRunNotWhole) Error() string {
	return fmt.Sprintf("number of vocabulary items must compose whole %d-grams", e.Order)
}

// ErrDuplicateNGram reports two structurally equal n-grams of the same order
// in the vocabulary.
type ErrDuplicateNGram struct {
	Order int
}

func (e *ErrDuplicateNGram) Error() string {
	return fmt.Sprintf("duplicate %d-grams detected in the vocabulary", e.Order)
}

// entry locates one retained n-gram inside the backing vocabulary.
type entry struct {
	id    int
	start int
	order int
}

// Pool is an immutable set of vocabulary n-grams keyed by content hash.
//
// Every n-gram of the vocabulary owns one slot of a dense id space in
// vocabulary order, whether or not it was retained; non-retained orders leave
// gaps so that external per-id tables (bin indexes, weights) stay aligned.
// Entries never copy tokens: they reference the backing vocabulary slice.
type Pool[T Token] struct {
	vocab    []T
	buckets  map[uint64][]entry
	total    int
	retained int
	maxID    int
}

// NewPool builds a pool from a flat vocabulary and its per-order boundary
// list. counts[i] is the start offset of the run holding the (i+1)-grams; each
// run ends where the next begins, the last at the end of the vocabulary.
//
// A run of order k is retained iff all && minOrder <= k <= maxOrder, or
// !all && k == maxOrder. Non-retained runs still advance the id counter by
// their n-gram count.
func NewPool[T Token](vocab []T, counts []int, minOrder, maxOrder int, all bool) (*Pool[T], error) {
	p := &Pool[T]{
		vocab:   vocab,
		buckets: make(map[uint64][]entry),
		maxID:   -1,
	}

	total := len(vocab)
	id := 0
	for i := 0; i < len(counts); i++ {
		order := i + 1
		start := counts[i]
		end := total
		if i+1 < len(counts) {
			end = counts[i+1]
		}
		if start < 0 || end < start || end > total {
			return nil, &ErrRunBounds{Order: order}
		}
		items := end - start
		if items == 0 {
			continue
		}
		if items%order != 0 {
			return nil, &ErrRunNotWhole{Order: order}
		}
		ngrams := items / order

		retain := order == maxOrder || (all && order >= minOrder && order <= maxOrder)
		if !retain {
			id += ngrams
			continue
		}
		for g := 0; g < ngrams; g++ {
			if err := p.insert(id, start+g*order, order); err != nil {
				return nil, err
			}
			id++
		}
	}
	p.total = id

	return p, nil
}

func (p *Pool[T]) insert(id, start, order int) error {
	w := NewWindow(p.vocab, start, 1, order)
	h := w.Hash()
	for _, e := range p.buckets[h] {
		if e.order == order && p.equal(e, w) {
			return &ErrDuplicateNGram{Order: order}
		}
	}
	p.buckets[h] = append(p.buckets[h], entry{id: id, start: start, order: order})
	p.retained++
	if id > p.maxID {
		p.maxID = id
	}
	return nil
}

// Lookup finds the pool id of the n-gram the window views. The hash narrows
// the search to one bucket; equality is confirmed token by token within the
// window's order, so cross-order hash collisions never produce false hits.
func (p *Pool[T]) Lookup(hash uint64, w Window[T]) (int, bool) {
	for _, e := range p.buckets[hash] {
		if e.order == w.Len() && p.equal(e, w) {
			return e.id, true
		}
	}
	return 0, false
}

func (p *Pool[T]) equal(e entry, w Window[T]) bool {
	for i := 0; i < e.order; i++ {
		if p.vocab[e.start+i] != w.At(i) {
			return false
		}
	}
	return true
}

// Len returns the number of retained entries.
func (p *Pool[T]) Len() int { return p.retained }

// Total returns the size of the id space, counting non-retained n-grams.
func (p *Pool[T]) Total() int { return p.total }

// MaxID returns the largest retained id, or -1 if nothing was retained.
func (p *Pool[T]) MaxID() int { return p.maxID }
