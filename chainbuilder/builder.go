package chainbuilder

import (
	"context"
	"math"

	xrand "golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/glinksrc"
	"github.com/dnngky/quekno-rx/isomorph"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// maxRedraws bounds how many fresh candidate subgraphs next_glink will try
// before giving up. §4.5 only promises "indefinite progress attempts" and
// leaves termination to the driver's wall-clock budget; this package
// instead fails with ErrNoProgress once the bound is hit, so a
// pathological architecture graph cannot spin the caller forever.
const maxRedraws = 2000

// Builder grows a glink.Chain to a target cost (§4.5).
type Builder struct {
	cfg     *config.Config
	matcher isomorph.Matcher
	gauss   *distuv.Normal
}

// New constructs a Builder from a resolved Config. The Gaussian
// subgraph-size sampler is seeded by drawing one int64 from cfg.Rand, so
// the whole build remains reproducible from cfg.Rand's own seed alone.
func New(cfg *config.Config) *Builder {
	seed := uint64(cfg.Rand.Int63())
	return &Builder{
		cfg:     cfg,
		matcher: isomorph.Matcher{Budget: cfg.Constants.VF2CallLimit},
		gauss: &distuv.Normal{
			Mu:    float64(cfg.SubgraphSize),
			Sigma: cfg.Constants.SubgraphSizeStd,
			Src:   xrand.New(xrand.NewSource(seed)),
		},
	}
}

// randomSubgraphSize draws m0 per §4.5 step 1: Gaussian around the
// configured mean, rounded up and clamped to [1, |E(AG)|].
func (b *Builder) randomSubgraphSize(ag *qgraph.Graph) int {
	m := int(math.Ceil(b.gauss.Rand()))
	if m < 1 {
		m = 1
	}
	if max := ag.NumEdges(); m > max {
		m = max
	}
	return m
}

// Build runs the full algorithm of §4.5: a head glink followed by
// non-head glinks grown until the accumulated cost reaches
// cfg.TargetCost. It returns the chain and its final accumulated cost.
func (b *Builder) Build(ctx context.Context) (*glink.Chain, int, error) {
	cfg := b.cfg
	ag := cfg.ArchGraph

	m0 := b.randomSubgraphSize(ag)
	head, err := ag.RandomSubgraph(m0, cfg.Rand)
	if err != nil {
		return nil, 0, err
	}

	chain := &glink.Chain{}
	chain.Append(glink.New(head, permutation.Random(ag.Nodes(), cfg.Rand)))

	if cfg.TargetCost == 0 {
		return chain, 0, nil
	}

	depthRegime := cfg.OptType.IsDepthRegime()
	cost := 0
	for cost < cfg.TargetCost {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		maxSwaps := 0
		if !depthRegime && cfg.TargetCost-cost == 1 {
			maxSwaps = 1
		}

		g, err := b.nextGlink(ctx, ag, chain.Tail().Subgraph, maxSwaps)
		if err != nil {
			return nil, 0, err
		}
		chain.Append(g)

		if depthRegime {
			cost++
		} else {
			cost += g.Perm.Len()
		}
	}
	return chain, cost, nil
}

// nextGlink implements §4.5 step 3a: redraw candidate subgraphs until one,
// combined with a permutation drawn from the configured regime's stream,
// forms a strong glink with tail.
func (b *Builder) nextGlink(ctx context.Context, ag, tail *qgraph.Graph, maxSwaps int) (glink.Glink, error) {
	cfg := b.cfg
	patience := cfg.Constants.GlinkSearchPatience

	for redraw := 0; redraw < maxRedraws; redraw++ {
		if err := ctx.Err(); err != nil {
			return glink.Glink{}, err
		}

		size := b.randomSubgraphSize(ag)
		candidate, err := ag.RandomSubgraph(size, cfg.Rand)
		if err != nil {
			continue
		}

		stream, err := glinksrc.Stream(cfg.OptType, ag, maxSwaps, cfg.Constants.ConsecSwapsBias, cfg.Rand)
		if err != nil {
			return glink.Glink{}, err
		}

		attempts := 0
		for perm := range stream {
			if attempts >= patience {
				break
			}
			attempts++
			if isStrongGlink(b.matcher, ag, tail, candidate, perm) {
				return glink.New(candidate, perm), nil
			}
		}
	}
	return glink.Glink{}, ErrNoProgress
}
