package evaluate

import (
	"math"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"almanac/internal/mapping"
	"almanac/internal/pipeline"
	"almanac/internal/seed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func stage(name string, ms ...mapping.Mapping) pipeline.Stage {
	return pipeline.Stage{Name: name, Table: mapping.NewTable(ms...)}
}

func m(dst, src, n uint64) mapping.Mapping {
	return mapping.Mapping{Destination: dst, Source: src, Length: n}
}

func samplePipeline() *pipeline.Pipeline {
	return pipeline.New(
		stage("seed-to-soil", m(50, 98, 2), m(52, 50, 48)),
		stage("soil-to-fertilizer", m(0, 15, 37), m(37, 52, 2), m(39, 0, 15)),
		stage("fertilizer-to-water", m(49, 53, 8), m(0, 11, 42), m(42, 0, 7), m(57, 7, 4)),
		stage("water-to-light", m(88, 18, 7), m(18, 25, 70)),
		stage("light-to-temperature", m(45, 77, 23), m(81, 45, 19), m(68, 64, 13)),
		stage("temperature-to-humidity", m(0, 69, 1), m(1, 0, 69)),
		stage("humidity-to-location", m(60, 56, 37), m(56, 93, 4)),
	)
}

var sampleTokens = []string{"79", "14", "55", "13"}

func TestLowest_SampleScalars(t *testing.T) {
	seeds, err := seed.ParseScalars(sampleTokens)
	require.NoError(t, err)

	p := samplePipeline()
	assert.Equal(t, uint64(82), p.Apply(79))
	assert.Equal(t, uint64(43), p.Apply(14))
	assert.Equal(t, uint64(86), p.Apply(55))
	assert.Equal(t, uint64(35), p.Apply(13))

	assert.Equal(t, uint64(35), New().Lowest(p, seeds))
	assert.Equal(t, uint64(35), New(WithStrategy(StrategyIntervals)).Lowest(p, seeds))
}

func TestLowest_SampleRanges(t *testing.T) {
	seeds, err := seed.ParseRanges(sampleTokens)
	require.NoError(t, err)

	p := samplePipeline()
	assert.Equal(t, uint64(46), New().Lowest(p, seeds))
	assert.Equal(t, uint64(46), New(WithStrategy(StrategyIntervals)).Lowest(p, seeds))
}

func TestLowest_EmptySeedsReturnsZero(t *testing.T) {
	p := samplePipeline()

	assert.Equal(t, uint64(0), New().Lowest(p, seed.Scalars{}))
	assert.Equal(t, uint64(0), New().Lowest(p, seed.Ranges{{Start: 5, Length: 0}}))
	assert.Equal(t, uint64(0), New().Lowest(p, nil))
	assert.Equal(t, uint64(0), New(WithStrategy(StrategyIntervals)).Lowest(p, seed.Ranges{}))
}

func TestLowest_NoStagesReturnsSmallestSeed(t *testing.T) {
	assert.Equal(t, uint64(3), New().Lowest(pipeline.New(), seed.Scalars{9, 3, 7}))
}

func TestLowest_IndependentOfPartitioning(t *testing.T) {
	p := samplePipeline()
	seeds := seed.Ranges{{Start: 0, Length: 500}, {Start: 1000, Length: 37}}

	want := New(WithWorkers(1), WithChunkSize(seeds.Len())).Lowest(p, seeds)

	for _, workers := range []int{1, 2, 3, 8} {
		for _, chunk := range []uint64{1, 3, 7, 64, 1000} {
			got := New(WithWorkers(workers), WithChunkSize(chunk)).Lowest(p, seeds)
			assert.Equal(t, want, got, "workers=%d chunk=%d", workers, chunk)
		}
	}
}

func TestLowest_RangeOfLengthOneEqualsScalar(t *testing.T) {
	p := samplePipeline()

	for _, v := range []uint64{0, 13, 55, 79, 98, 99, 100} {
		scalar := New().Lowest(p, seed.Scalars{v})
		ranged := New().Lowest(p, seed.Ranges{{Start: v, Length: 1}})
		assert.Equal(t, scalar, ranged, "seed %d", v)
	}
}

func TestLowest_StrategiesAgreeOnRandomPipelines(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for trial := range 40 {
		var stages []pipeline.Stage
		for range 1 + rng.IntN(5) {
			var ms []mapping.Mapping
			for range rng.IntN(12) {
				ms = append(ms, m(rng.Uint64N(1000), rng.Uint64N(1000), rng.Uint64N(120)))
			}

			stages = append(stages, stage("s", ms...))
		}

		p := pipeline.New(stages...)

		var seeds seed.Ranges
		for range 1 + rng.IntN(3) {
			seeds = append(seeds, seed.Range{Start: rng.Uint64N(1000), Length: 1 + rng.Uint64N(200)})
		}

		brute := New(WithChunkSize(17)).Lowest(p, seeds)
		intervals := New(WithStrategy(StrategyIntervals)).Lowest(p, seeds)
		require.Equal(t, brute, intervals, "trial %d", trial)
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New()
	assert.Equal(t, runtime.GOMAXPROCS(0), e.Workers())
	assert.Equal(t, StrategyBruteForce, e.Strategy())
	assert.Equal(t, uint64(DefaultChunkSize), e.chunkSize)

	e = New(WithWorkers(0), WithChunkSize(0), WithLogger(nil))
	assert.Equal(t, runtime.GOMAXPROCS(0), e.Workers())
	assert.Equal(t, uint64(DefaultChunkSize), e.chunkSize)
	assert.NotNil(t, e.logger)

	e = New(WithWorkers(3), WithChunkSize(10), WithStrategy(StrategyIntervals))
	assert.Equal(t, 3, e.Workers())
	assert.Equal(t, uint64(10), e.chunkSize)
	assert.Equal(t, StrategyIntervals, e.Strategy())
}

func TestLowest_LogsResult(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	seeds := seed.Scalars{79, 14, 55, 13}
	New(WithLogger(zap.New(core))).Lowest(samplePipeline(), seeds)

	entries := logs.FilterMessage("lowest output computed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, uint64(35), fields["lowest"])
	assert.Equal(t, uint64(4), fields["seeds"])
	assert.Equal(t, "brute-force", fields["strategy"])
}

func TestLowest_IntervalsNearUint64Limit(t *testing.T) {
	tests := []struct {
		name   string
		stages []pipeline.Stage
		seeds  seed.Set
		want   uint64
	}{
		{
			name:   "destination wraps",
			stages: []pipeline.Stage{stage("wrap", m(math.MaxUint64, 0, 2))},
			seeds:  seed.Ranges{{Start: 0, Length: 2}},
			want:   0,
		},
		{
			name: "destination ends at the limit",
			stages: []pipeline.Stage{
				stage("up", m(math.MaxUint64-1, 0, 2)),
				stage("down", m(7, math.MaxUint64, 1)),
			},
			seeds: seed.Scalars{0, 1},
			want:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pipeline.New(tt.stages...)
			require.True(t, p.ReachesMax())

			brute := New().Lowest(p, tt.seeds)
			intervals := New(WithStrategy(StrategyIntervals)).Lowest(p, tt.seeds)

			assert.Equal(t, tt.want, brute)
			assert.Equal(t, brute, intervals)
		})
	}
}

func TestLowest_HugeRangesAreNotEmpty(t *testing.T) {
	p := pipeline.New(stage("shift", m(3, 5, 1)))
	seeds := seed.Ranges{{Start: 5, Length: 1 << 63}, {Start: 5, Length: 1 << 63}}

	assert.Equal(t, uint64(3), New(WithStrategy(StrategyIntervals)).Lowest(p, seeds))

	core, logs := observer.New(zap.InfoLevel)
	New(WithLogger(zap.New(core)), WithStrategy(StrategyIntervals)).Lowest(p, seeds)
	require.Len(t, logs.FilterMessage("lowest output computed").All(), 1)
}
