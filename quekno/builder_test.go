package quekno_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/qgraph"
	"github.com/dnngky/quekno-rx/quekno"
)

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

func newCfg(t *testing.T, opt config.OptType, targetCost int, seed int64) *config.Config {
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

func TestNewRejectsNilConfig(t *testing.T) {
	if _, err := quekno.New(nil); !errors.Is(err, quekno.ErrNilConfig) {
		t.Fatalf("New(nil) err = %v, want ErrNilConfig", err)
	}
}

func TestRunProducesFullTriple(t *testing.T) {
	cfg := newCfg(t, config.Opt1, 3, 1)
	b, err := quekno.New(cfg)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	result, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if result.Chain.Len() < 2 {
		t.Fatalf("Chain.Len() = %d, want >= 2", result.Chain.Len())
	}
	if result.Circuit.Size() == 0 {
		t.Fatal("Circuit.Size() = 0, want > 0")
	}
	if result.Routed.TrueCost != 3 {
		t.Fatalf("TrueCost = %d, want 3", result.Routed.TrueCost)
	}
	if result.Metrics.Cost != 3 {
		t.Fatalf("Metrics.Cost = %d, want 3", result.Metrics.Cost)
	}
	if result.Metrics.Summary() == "" {
		t.Fatal("Summary() is empty")
	}
}

func TestRunIsDeterministicGivenSameSeed(t *testing.T) {
	cfg1 := newCfg(t, config.Depth, 2, 99)
	cfg2 := newCfg(t, config.Depth, 2, 99)

	b1, err := quekno.New(cfg1)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	b2, err := quekno.New(cfg2)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	r1, err := b1.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	r2, err := b2.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if r1.Circuit.Size() != r2.Circuit.Size() || r1.Circuit.Depth() != r2.Circuit.Depth() {
		t.Fatal("same seed produced different circuits")
	}
	if r1.Routed.TrueCost != r2.Routed.TrueCost {
		t.Fatal("same seed produced different true costs")
	}
}

func TestRunZeroTargetCostEmitsNoSwaps(t *testing.T) {
	cfg := newCfg(t, config.Opt1, 0, 5)
	b, err := quekno.New(cfg)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	result, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if result.Routed.TrueCost != 0 {
		t.Fatalf("TrueCost = %d, want 0", result.Routed.TrueCost)
	}
	if result.Routed.Routed.Size() != result.Circuit.Size() {
		t.Fatal("routed.size != circuit.size with zero target cost")
	}
}
