// Package ngramvec provides an embedded n-gram / skip-gram feature extractor
// for Go.
//
// Given a fixed vocabulary of n-grams and a weighting mode, a Vectorizer
// scans a token sequence, counts occurrences of every pooled n-gram
// (optionally across skip strides) and emits a fixed-length TF, IDF or TFIDF
// vector. Inputs may be string, int64 or int32 token sequences; int32 tokens
// share the int64 vocabulary.
//
// # Quick Start
//
//	v, err := ngramvec.New(ngramvec.Config{
//	    Mode:         ngramvec.ModeTF,
//	    MinOrder:     1,
//	    MaxOrder:     2,
//	    All:          true,
//	    NGramCounts:  []int{0, 2},            // unigrams at 0, bigrams at 2
//	    NGramIndexes: []int{0, 1, 2},         // pool id -> output bin
//	    PoolStrings:  []string{"a", "b", "a", "b"},
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	out, _ := v.TransformStrings(ctx, []string{"a", "b", "a"})
//	// out == []float32{2, 1, 1}
//
// # Concurrency
//
// A Vectorizer is immutable after New. Transform calls are safe to run
// concurrently; each owns a pooled frequency accumulator. BatchTransform
// fans a document set out across GOMAXPROCS workers.
//
// # Weighting
//
//   - ModeTF emits raw counts.
//   - ModeIDF emits presence indicators, or the supplied per-bin weights.
//   - ModeTFIDF emits counts scaled by the supplied weights; without weights
//     it emits raw counts.
package ngramvec
