package ngram

// Token constrains the element kinds a pool can hold. 32-bit integer inputs
// are widened to int64 before they reach this package, so two kinds suffice.
type Token interface {
	~int64 | ~string
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211

	// Golden-ratio constant used by the order-sensitive combiner.
	hashCombineConst = 0x9e3779b97f4a7c15
)

// HashToken returns the 64-bit content hash of a single token. String tokens
// hash by content (FNV-1a), never by storage identity; integer tokens are
// finalized through a splitmix64-style mixer so that nearby values spread.
func HashToken[T Token](v T) uint64 {
	switch t := any(v).(type) {
	case int64:
		return mixInt64(uint64(t))
	case string:
		return hashString(t)
	default:
		// Token permits only the two cases above.
		panic("ngram: unreachable token kind")
	}
}

// Combine folds a token hash into a running window hash. The combiner is
// non-commutative, so permuting tokens changes the result. Equality is always
// re-checked structurally on a bucket hit; the hash only accelerates lookup.
func Combine(acc, tokenHash uint64) uint64 {
	return acc ^ (tokenHash + hashCombineConst + (acc << 6) + (acc >> 2))
}

func hashString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func mixInt64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}
