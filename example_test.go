package ngramvec_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/ngramvec"
)

func Example() {
	ctx := context.Background()

	// Vocabulary: unigrams "a" and "b" (ids 0, 1) followed by the bigram
	// ("a", "b") (id 2). Each id maps to its own output bin.
	v, err := ngramvec.New(ngramvec.Config{
		Mode:         ngramvec.ModeTF,
		MinOrder:     1,
		MaxOrder:     2,
		All:          true,
		NGramCounts:  []int{0, 2},
		NGramIndexes: []int{0, 1, 2},
		PoolStrings:  []string{"a", "b", "a", "b"},
	})
	if err != nil {
		panic(err)
	}

	out, err := v.TransformStrings(ctx, []string{"a", "b", "a"})
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: [2 1 1]
}

func Example_skipGrams() {
	ctx := context.Background()

	// The bigram (1, 3) never occurs contiguously in the input, but one
	// skip allows the window to sample every second token.
	v, err := ngramvec.New(ngramvec.Config{
		Mode:         ngramvec.ModeTF,
		MinOrder:     2,
		MaxOrder:     2,
		Skips:        1,
		NGramCounts:  []int{0, 0},
		NGramIndexes: []int{0},
		PoolInt64s:   []int64{1, 3},
	})
	if err != nil {
		panic(err)
	}

	out, err := v.TransformInt64s(ctx, []int64{1, 2, 3})
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: [1]
}
