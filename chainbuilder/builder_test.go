package chainbuilder_test

import (
	"context"
	"testing"

	"github.com/dnngky/quekno-rx/chainbuilder"
	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/qgraph"
)

// k5 returns the complete graph on 5 nodes: dense enough that strong
// glinks are easy to find within the default patience/redraw budgets.
func k5(t *testing.T) *qgraph.Graph {
	t.Helper()
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	g, err := qgraph.FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges() = %v", err)
	}
	return g
}

func newConfig(t *testing.T, opt config.OptType, targetCost int, seed int64) *config.Config {
	t.Helper()
	cfg, err := config.New(
		config.WithOptType(opt),
		config.WithTargetCost(targetCost),
		config.WithArchGraph(k5(t)),
		config.WithSubgraphSize(config.SubgraphSize(3)),
		config.WithQBGRatio(config.QBGRatioTFL),
		config.WithSeed(seed),
	)
	if err != nil {
		t.Fatalf("config.New() = %v", err)
	}
	return cfg
}

func TestBuildWithZeroTargetCostReturnsHeadOnly(t *testing.T) {
	cfg := newConfig(t, config.Opt1, 0, 1)
	b := chainbuilder.New(cfg)
	chain, cost, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if cost != 0 {
		t.Fatalf("cost = %d, want 0", cost)
	}
	if chain.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (head only)", chain.Len())
	}
}

func TestBuildReachesTargetCostGateRegime(t *testing.T) {
	cfg := newConfig(t, config.Opt1, 4, 7)
	b := chainbuilder.New(cfg)
	chain, cost, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if cost != 4 {
		t.Fatalf("cost = %d, want 4", cost)
	}
	if got := chain.Cost(false); got != cost {
		t.Fatalf("chain.Cost(false) = %d, want %d", got, cost)
	}
}

func TestBuildReachesTargetCostDepthRegime(t *testing.T) {
	cfg := newConfig(t, config.Depth, 3, 9)
	b := chainbuilder.New(cfg)
	chain, cost, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if cost != 3 {
		t.Fatalf("cost = %d, want 3", cost)
	}
	if got := chain.Cost(true); got != cost {
		t.Fatalf("chain.Cost(true) = %d, want %d", got, cost)
	}
	if got := chain.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4 (1 head + 3 non-head)", got)
	}
}

func TestBuildIsDeterministicGivenSameSeed(t *testing.T) {
	cfg1 := newConfig(t, config.Opt2, 5, 42)
	cfg2 := newConfig(t, config.Opt2, 5, 42)

	chain1, cost1, err := chainbuilder.New(cfg1).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	chain2, cost2, err := chainbuilder.New(cfg2).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if cost1 != cost2 {
		t.Fatalf("cost1 = %d, cost2 = %d, want equal for identical seeds", cost1, cost2)
	}
	if chain1.Len() != chain2.Len() {
		t.Fatalf("Len() mismatch: %d vs %d", chain1.Len(), chain2.Len())
	}
	for i := 0; i < chain1.Len(); i++ {
		if !chain1.At(i).Subgraph.Equal(chain2.At(i).Subgraph) {
			t.Fatalf("glink %d subgraphs differ between identically-seeded builds", i)
		}
	}
}

func TestBuildRespectsContextCancellation(t *testing.T) {
	cfg := newConfig(t, config.Opt1, 100, 3)
	b := chainbuilder.New(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := b.Build(ctx); err == nil {
		t.Fatalf("Build() with a cancelled context = nil error, want non-nil")
	}
}
