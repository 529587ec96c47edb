// Package scan implements the matching pass of the vectorizer: it slides
// every admissible window of an input sequence over an immutable n-gram pool
// and accumulates per-bin hit counts.
package scan

import "github.com/hupe1980/ngramvec/ngram"

// Params carries the immutable matching configuration. Indexes maps every
// pool id to its output bin.
type Params struct {
	MinOrder int
	MaxOrder int
	Skips    int
	All      bool
	Indexes  []int
}

// startOrder returns the smallest order that is ever tested against the pool.
func (p Params) startOrder() int {
	if p.All {
		return p.MinOrder
	}
	return p.MaxOrder
}

// Run scans one input sequence and accumulates hit counts into acc.
//
// Every start position grows a single window one token at a time per skip
// stride, so each admissible order is tested exactly once per (start, stride)
// pair. Overlapping and nested matches all count; there is no early exit on a
// hit. A sequence shorter than every retained order yields zero matches.
func Run[T ngram.Token](pool *ngram.Pool[T], p Params, input []T, acc *Accumulator) {
	n := p.MaxOrder
	strideMax := p.Skips + 1
	startOrder := p.startOrder()
	total := len(input)

	// Unigrams need no stride handling, so test them in one linear pass and
	// keep them out of the stride loop below.
	if startOrder == 1 {
		for i := 0; i < total; i++ {
			h := ngram.Combine(0, ngram.HashToken(input[i]))
			if id, ok := pool.Lookup(h, ngram.NewWindow(input, i, 1, 1)); ok {
				acc.Inc(p.Indexes[id])
			}
		}
		startOrder++
		if startOrder > n {
			return
		}
	}

	for si := 1; si <= strideMax; si++ {
		for start := 0; start+si*(startOrder-1) < total; start++ {
			var h uint64
			for order := 1; order <= n; order++ {
				last := start + (order-1)*si
				if last >= total {
					break
				}
				h = ngram.Combine(h, ngram.HashToken(input[last]))
				if order < startOrder {
					continue
				}
				if id, ok := pool.Lookup(h, ngram.NewWindow(input, start, si, order)); ok {
					acc.Inc(p.Indexes[id])
				}
			}
		}
	}
}
