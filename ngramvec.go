package ngramvec

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/ngramvec/internal/scan"
	"github.com/hupe1980/ngramvec/ngram"
)

// Vectorizer converts token sequences into weighted n-gram frequency vectors.
//
// A Vectorizer is built once from a Config and is immutable afterwards: any
// number of Transform calls may run concurrently against it, each owning its
// private frequency accumulator. A failed construction leaves nothing usable;
// a failed transform leaves the vectorizer intact for subsequent calls.
type Vectorizer struct {
	mode       Mode
	params     scan.Params
	weights    []float32
	outputSize int

	// Exactly one pool is populated, selected by the supplied vocabulary
	// form; the other stays empty so scans of the mismatched element kind
	// simply find nothing.
	strPool *ngram.Pool[string]
	intPool *ngram.Pool[int64]

	logger  *Logger
	metrics MetricsCollector
	accPool sync.Pool
}

// New builds a Vectorizer from the configuration. All configuration errors
// surface here; construction must succeed before any transform is accepted.
func New(cfg Config, optFns ...Option) (*Vectorizer, error) {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	start := time.Now()
	v, err := build(cfg)
	o.metricsCollector.RecordBuild(time.Since(start), err)
	if err != nil {
		o.logger.LogBuild(context.Background(), 0, 0, err)
		return nil, err
	}

	v.logger = o.logger
	v.metrics = o.metricsCollector
	v.logger.LogBuild(context.Background(), v.PoolLen(), v.outputSize, nil)

	return v, nil
}

func build(cfg Config) (*Vectorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v := &Vectorizer{
		mode:       cfg.Mode,
		weights:    cfg.Weights,
		outputSize: cfg.outputSize(),
		params: scan.Params{
			MinOrder: cfg.MinOrder,
			MaxOrder: cfg.MaxOrder,
			Skips:    cfg.Skips,
			All:      cfg.All,
			Indexes:  cfg.NGramIndexes,
		},
	}

	var maxID int
	if len(cfg.PoolStrings) > 0 {
		pool, err := ngram.NewPool(cfg.PoolStrings, cfg.NGramCounts, cfg.MinOrder, cfg.MaxOrder, cfg.All)
		if err != nil {
			return nil, err
		}
		v.strPool = pool
		maxID = pool.MaxID()
	} else {
		pool, err := ngram.NewPool(cfg.PoolInt64s, cfg.NGramCounts, cfg.MinOrder, cfg.MaxOrder, cfg.All)
		if err != nil {
			return nil, err
		}
		v.intPool = pool
		maxID = pool.MaxID()
	}
	if maxID >= len(cfg.NGramIndexes) {
		return nil, &ErrIndexSpace{MaxID: maxID, Indexes: len(cfg.NGramIndexes)}
	}

	if v.strPool == nil {
		v.strPool = emptyPool[string]()
	}
	if v.intPool == nil {
		v.intPool = emptyPool[int64]()
	}

	size := v.outputSize
	v.accPool.New = func() any {
		return scan.NewAccumulator(size)
	}

	return v, nil
}

func emptyPool[T ngram.Token]() *ngram.Pool[T] {
	// Cannot fail: there is nothing to validate or deduplicate.
	p, _ := ngram.NewPool[T](nil, []int{0}, 1, 1, false)
	return p
}

// OutputSize returns the length of every output vector.
func (v *Vectorizer) OutputSize() int { return v.outputSize }

// PoolLen returns the number of retained vocabulary n-grams.
func (v *Vectorizer) PoolLen() int {
	return v.strPool.Len() + v.intPool.Len()
}

// Mode returns the configured weighting mode.
func (v *Vectorizer) Mode() Mode { return v.mode }

// Transform dispatches on the dynamic element kind of input, which must be a
// []string, []int64 or []int32. Any other kind fails the call with
// ErrUnsupportedInput without affecting the vectorizer.
func (v *Vectorizer) Transform(ctx context.Context, input any) ([]float32, error) {
	switch in := input.(type) {
	case []string:
		return v.TransformStrings(ctx, in)
	case []int64:
		return v.TransformInt64s(ctx, in)
	case []int32:
		return v.TransformInt32s(ctx, in)
	default:
		err := &ErrUnsupportedInput{Kind: fmt.Sprintf("%T", input)}
		v.metrics.RecordTransform(0, err)
		v.logger.LogTransform(ctx, 0, err)
		return nil, err
	}
}

// TransformStrings scans one string token sequence and returns its weighted
// frequency vector.
func (v *Vectorizer) TransformStrings(ctx context.Context, input []string) ([]float32, error) {
	out := make([]float32, v.outputSize)
	if err := v.TransformStringsInto(ctx, out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformStringsInto is TransformStrings writing into a caller-owned
// buffer, whose length must equal OutputSize.
func (v *Vectorizer) TransformStringsInto(ctx context.Context, dst []float32, input []string) error {
	start := time.Now()
	err := v.checkDst(dst)
	if err == nil {
		v.transformStrings(dst, input)
	}
	v.metrics.RecordTransform(time.Since(start), err)
	v.logger.LogTransform(ctx, len(input), err)
	return err
}

// TransformInt64s scans one int64 token sequence and returns its weighted
// frequency vector.
func (v *Vectorizer) TransformInt64s(ctx context.Context, input []int64) ([]float32, error) {
	out := make([]float32, v.outputSize)
	if err := v.TransformInt64sInto(ctx, out, input); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformInt64sInto is TransformInt64s writing into a caller-owned buffer,
// whose length must equal OutputSize.
func (v *Vectorizer) TransformInt64sInto(ctx context.Context, dst []float32, input []int64) error {
	start := time.Now()
	err := v.checkDst(dst)
	if err == nil {
		v.transformInt64s(dst, input)
	}
	v.metrics.RecordTransform(time.Since(start), err)
	v.logger.LogTransform(ctx, len(input), err)
	return err
}

// TransformInt32s scans one int32 token sequence and returns its weighted
// frequency vector. Tokens are widened to int64 before scanning, so an int32
// sequence and its int64 widening always produce identical output.
func (v *Vectorizer) TransformInt32s(ctx context.Context, input []int32) ([]float32, error) {
	return v.TransformInt64s(ctx, widen(input))
}

// TransformInt32sInto is TransformInt32s writing into a caller-owned buffer.
func (v *Vectorizer) TransformInt32sInto(ctx context.Context, dst []float32, input []int32) error {
	return v.TransformInt64sInto(ctx, dst, widen(input))
}

func widen(input []int32) []int64 {
	out := make([]int64, len(input))
	for i, t := range input {
		out[i] = int64(t)
	}
	return out
}

func (v *Vectorizer) checkDst(dst []float32) error {
	if len(dst) != v.outputSize {
		return &ErrOutputLength{Expected: v.outputSize, Actual: len(dst)}
	}
	return nil
}

func (v *Vectorizer) transformStrings(dst []float32, input []string) {
	acc := v.getAccumulator()
	defer v.putAccumulator(acc)
	scan.Run(v.strPool, v.params, input, acc)
	v.encode(acc, dst)
}

func (v *Vectorizer) transformInt64s(dst []float32, input []int64) {
	acc := v.getAccumulator()
	defer v.putAccumulator(acc)
	scan.Run(v.intPool, v.params, input, acc)
	v.encode(acc, dst)
}

func (v *Vectorizer) getAccumulator() *scan.Accumulator {
	return v.accPool.Get().(*scan.Accumulator)
}

func (v *Vectorizer) putAccumulator(acc *scan.Accumulator) {
	acc.Reset()
	v.accPool.Put(acc)
}
