// Package ngram provides the building blocks of the vectorizer: content
// hashing for tokens, zero-copy strided windows over token sequences, and the
// immutable n-gram pool built from a flat vocabulary.
//
// A pool is constructed once from a vocabulary partitioned into per-order runs
// and is read-only afterwards, so any number of concurrent scans may share it.
package ngram
