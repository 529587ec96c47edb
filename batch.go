package ngramvec

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchTransformStrings transforms many documents concurrently. The
// vectorizer is immutable and every call owns its accumulator, so documents
// fan out across GOMAXPROCS workers without locking. Output order matches
// input order.
func (v *Vectorizer) BatchTransformStrings(ctx context.Context, inputs [][]string) ([][]float32, error) {
	start := time.Now()
	out := make([][]float32, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vec := make([]float32, v.outputSize)
			v.transformStrings(vec, input)
			out[i] = vec
			return nil
		})
	}

	err := g.Wait()
	v.recordBatch(ctx, len(inputs), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BatchTransformInt64s is BatchTransformStrings for int64 token sequences.
func (v *Vectorizer) BatchTransformInt64s(ctx context.Context, inputs [][]int64) ([][]float32, error) {
	start := time.Now()
	out := make([][]float32, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vec := make([]float32, v.outputSize)
			v.transformInt64s(vec, input)
			out[i] = vec
			return nil
		})
	}

	err := g.Wait()
	v.recordBatch(ctx, len(inputs), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (v *Vectorizer) recordBatch(ctx context.Context, count int, d time.Duration, err error) {
	failed := 0
	if err != nil {
		failed = count
	}
	v.metrics.RecordBatchTransform(count, failed, d)
	v.logger.LogBatchTransform(ctx, count, err)
}
