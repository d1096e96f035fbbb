package evaluate

import (
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"almanac/internal/common"
	"almanac/internal/pipeline"
	"almanac/internal/seed"
)

// DefaultChunkSize is the number of seeds one worker task evaluates.
const DefaultChunkSize = 1 << 16

// Evaluator searches the lowest pipeline output. It holds no per-run state
// and may be reused and shared.
type Evaluator struct {
	workers   int
	chunkSize uint64
	strategy  Strategy
	logger    *zap.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers bounds the number of concurrently evaluated chunks.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithChunkSize sets how many seeds each task evaluates. Zero keeps the default.
func WithChunkSize(n uint64) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(e *Evaluator) {
		e.strategy = s
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an evaluator using every available CPU by default.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		strategy:  StrategyBruteForce,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Workers returns the configured pool size.
func (e *Evaluator) Workers() int { return e.workers }

// Strategy returns the configured strategy.
func (e *Evaluator) Strategy() Strategy { return e.strategy }

// Lowest returns the minimum of p.Apply over every seed, or 0 for an empty set.
func (e *Evaluator) Lowest(p *pipeline.Pipeline, seeds seed.Set) uint64 {
	if seeds == nil || seeds.Len() == 0 {
		e.logger.Debug("no seeds to evaluate")
		return 0
	}

	start := time.Now()

	var lowest uint64

	strategy := e.strategy
	if strategy == StrategyIntervals && p.ReachesMax() {
		e.logger.Debug("mappings reach the 64-bit limit; using brute force")
		strategy = StrategyBruteForce
	}

	switch strategy {
	case StrategyIntervals:
		lowest = lowestImage(p, seeds)
	default:
		lowest = e.lowestBruteForce(p, seeds)
	}

	e.logger.Info("lowest output computed",
		zap.Stringer("strategy", strategy),
		zap.Uint64("seeds", seeds.Len()),
		zap.Int("stages", p.Len()),
		zap.Int("workers", e.workers),
		zap.Uint64("lowest", lowest),
		zap.Duration("elapsed", time.Since(start)))

	return lowest
}

func (e *Evaluator) lowestBruteForce(p *pipeline.Pipeline, seeds seed.Set) uint64 {
	chunks := seeds.Split(e.chunkSize)
	partial := make([]uint64, len(chunks))

	e.logger.Debug("evaluating chunks",
		zap.Int("chunks", len(chunks)),
		zap.Uint64("chunk_size", e.chunkSize))

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			partial[i] = lowestOf(p, chunk)
			return nil
		})
	}

	// tasks never fail
	_ = g.Wait()

	lowest, _ := common.Min(partial)

	return lowest
}

func lowestOf(p *pipeline.Pipeline, chunk seed.Set) uint64 {
	best := uint64(math.MaxUint64)
	for v := range chunk.All() {
		best = min(best, p.Apply(v))
	}

	return best
}

func lowestImage(p *pipeline.Pipeline, seeds seed.Set) uint64 {
	img := p.Image(seeds.Intervals())

	starts := make([]uint64, len(img))
	for i, r := range img {
		starts[i] = r.Start
	}

	lowest, _ := common.Min(starts)

	return lowest
}
