package config

import (
	"math/rand"

	"github.com/dnngky/quekno-rx/qgraph"
)

// Config holds a fully-resolved builder configuration: the required
// options of §6 plus the runtime constants table and an explicit RNG.
type Config struct {
	OptType      OptType
	TargetCost   int
	ArchGraph    *qgraph.Graph
	SubgraphSize int
	QBGRatio     float64
	Constants    RuntimeConstants
	Rand         *rand.Rand
	AddBarriers  bool

	optTypeSet   bool
	archGraphSet bool
}

// Option mutates a Config before it is validated by New. Following the
// teacher's convention, option constructors validate and panic on
// meaningless input (negative sizes, nil graphs); the Config itself is
// never left partially invalid by a successfully-applied option.
type Option func(*Config)

// WithOptType selects the PermutationSource regime (required).
func WithOptType(o OptType) Option {
	return func(c *Config) {
		c.OptType = o
		c.optTypeSet = true
	}
}

// WithTargetCost sets the intended routing cost (required). Panics if
// target < 0.
func WithTargetCost(target int) Option {
	if target < 0 {
		panic(ErrNegativeTargetCost)
	}
	return func(c *Config) {
		c.TargetCost = target
	}
}

// WithArchGraph sets the architecture graph (required). Panics if ag is
// nil.
func WithArchGraph(ag *qgraph.Graph) Option {
	if ag == nil {
		panic(ErrMissingArchGraph)
	}
	return func(c *Config) {
		c.ArchGraph = ag
		c.archGraphSet = true
	}
}

// WithSubgraphSize sets the mean subgraph edge count (required). Panics if
// size <= 0.
func WithSubgraphSize(size SubgraphSize) Option {
	if size <= 0 {
		panic(ErrNonPositiveSubgraphSize)
	}
	return func(c *Config) {
		c.SubgraphSize = size.Value()
	}
}

// WithQBGRatio sets the target one-to-two-qubit-gate ratio (required).
// Panics if ratio <= 0.
func WithQBGRatio(ratio QBGRatio) Option {
	if ratio <= 0 {
		panic(ErrNonPositiveQBGRatio)
	}
	return func(c *Config) {
		c.QBGRatio = ratio.Value()
	}
}

// WithRuntimeConstants overrides the default runtime constants table.
func WithRuntimeConstants(rc RuntimeConstants) Option {
	return func(c *Config) {
		c.Constants = rc
	}
}

// WithSeed creates a new *rand.Rand seeded deterministically, for
// reproducible builds (§5: "randomness is drawn from a single stream that
// must be seedable").
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG, overriding WithSeed if both are given
// (options apply in order; later wins).
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		c.Rand = rng
	}
}

// WithBarriers enables emitting a barrier marker between glinks in the
// assembled circuit (§4.6 step 5).
func WithBarriers(enabled bool) Option {
	return func(c *Config) {
		c.AddBarriers = enabled
	}
}

// New resolves a Config from the given options, applying
// DefaultRuntimeConstants and a time-independent default RNG (seed 0) when
// not overridden, then validates that every required option (§6) was set.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		Constants: DefaultRuntimeConstants(),
		Rand:      rand.New(rand.NewSource(0)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.optTypeSet {
		return nil, ErrMissingOptType
	}
	if !c.archGraphSet {
		return nil, ErrMissingArchGraph
	}
	if c.TargetCost < 0 {
		return nil, ErrNegativeTargetCost
	}
	if c.SubgraphSize <= 0 {
		return nil, ErrNonPositiveSubgraphSize
	}
	if c.QBGRatio <= 0 {
		return nil, ErrNonPositiveQBGRatio
	}
	return c, nil
}
