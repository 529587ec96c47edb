package scan

import "github.com/RoaringBitmap/roaring/v2"

// Accumulator collects per-bin hit counts for a single scan. It is owned by
// exactly one invocation at a time; a roaring bitmap tracks the touched bins
// so a pooled accumulator resets in O(hits) instead of O(bins).
type Accumulator struct {
	counts  []uint32
	touched *roaring.Bitmap
}

// NewAccumulator returns a zeroed accumulator with the given number of bins.
func NewAccumulator(bins int) *Accumulator {
	return &Accumulator{
		counts:  make([]uint32, bins),
		touched: roaring.New(),
	}
}

// Inc increments the counter of one bin.
func (a *Accumulator) Inc(bin int) {
	a.counts[bin]++
	a.touched.Add(uint32(bin))
}

// Count returns the counter of one bin.
func (a *Accumulator) Count(bin int) uint32 { return a.counts[bin] }

// Len returns the number of bins.
func (a *Accumulator) Len() int { return len(a.counts) }

// Touched returns the number of distinct bins hit during the scan.
func (a *Accumulator) Touched() uint64 { return a.touched.GetCardinality() }

// Reset zeroes the touched counters and clears the bitmap, preparing the
// accumulator for reuse.
func (a *Accumulator) Reset() {
	a.touched.Iterate(func(bin uint32) bool {
		a.counts[bin] = 0
		return true
	})
	a.touched.Clear()
}
