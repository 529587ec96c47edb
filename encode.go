package ngramvec

import "github.com/hupe1980/ngramvec/internal/scan"

// encode converts accumulated counts into the weighted output vector.
//
// TF emits raw counts. IDF emits the configured weight of every hit bin, or a
// 1.0 presence indicator without weights. TFIDF scales counts by the weights;
// without weights it emits raw counts, which matches the reference kernel and
// must not be "corrected" to presence scaling.
func (v *Vectorizer) encode(acc *scan.Accumulator, dst []float32) {
	switch v.mode {
	case ModeTF:
		for i := range dst {
			dst[i] = float32(acc.Count(i))
		}
	case ModeIDF:
		if len(v.weights) > 0 {
			for i := range dst {
				if acc.Count(i) > 0 {
					dst[i] = v.weights[i]
				} else {
					dst[i] = 0
				}
			}
		} else {
			for i := range dst {
				if acc.Count(i) > 0 {
					dst[i] = 1
				} else {
					dst[i] = 0
				}
			}
		}
	case ModeTFIDF:
		if len(v.weights) > 0 {
			for i := range dst {
				dst[i] = float32(acc.Count(i)) * v.weights[i]
			}
		} else {
			for i := range dst {
				dst[i] = float32(acc.Count(i))
			}
		}
	}
}
