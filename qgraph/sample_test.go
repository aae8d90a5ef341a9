package qgraph_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dnngky/quekno-rx/qgraph"
)

func TestRandomSubgraphSize(t *testing.T) {
	g := mustFromEdges(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	rng := rand.New(rand.NewSource(1))
	sub, err := g.RandomSubgraph(2, rng)
	if err != nil {
		t.Fatalf("RandomSubgraph(2) = %v, want nil error", err)
	}
	if got, want := sub.NumEdges(), 2; got != want {
		t.Fatalf("NumEdges() = %d, want %d", got, want)
	}
}

func TestRandomSubgraphRejectsOutOfRange(t *testing.T) {
	g := mustFromEdges(t, [][2]int{{0, 1}})
	rng := rand.New(rand.NewSource(1))
	if _, err := g.RandomSubgraph(0, rng); !errors.Is(err, qgraph.ErrSampleSizeInvalid) {
		t.Fatalf("RandomSubgraph(0) err = %v, want ErrSampleSizeInvalid", err)
	}
	if _, err := g.RandomSubgraph(2, rng); !errors.Is(err, qgraph.ErrSampleSizeInvalid) {
		t.Fatalf("RandomSubgraph(2) err = %v, want ErrSampleSizeInvalid", err)
	}
}

func TestRandomNodesIncludeAll(t *testing.T) {
	g := mustFromEdges(t, [][2]int{{0, 1}, {1, 2}})
	rng := rand.New(rand.NewSource(1))
	nodes, err := g.RandomNodes(5, true, rng)
	if err != nil {
		t.Fatalf("RandomNodes(5, true) = %v, want nil error", err)
	}
	seen := make(map[int]bool)
	for _, n := range nodes[:3] {
		seen[n.Val()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("first |V| draws = %v, want all distinct nodes present", nodes[:3])
	}
}

func TestRandomNodesInsufficientPopulation(t *testing.T) {
	g := mustFromEdges(t, [][2]int{{0, 1}, {1, 2}})
	rng := rand.New(rand.NewSource(1))
	if _, err := g.RandomNodes(2, true, rng); !errors.Is(err, qgraph.ErrInsufficientPopulation) {
		t.Fatalf("err = %v, want ErrInsufficientPopulation", err)
	}
}

func TestRandomEdgesWithoutIncludeAll(t *testing.T) {
	g := mustFromEdges(t, [][2]int{{0, 1}, {1, 2}})
	rng := rand.New(rand.NewSource(1))
	edges, err := g.RandomEdges(10, false, rng)
	if err != nil {
		t.Fatalf("RandomEdges(10, false) = %v, want nil error", err)
	}
	if len(edges) != 10 {
		t.Fatalf("len(edges) = %d, want 10", len(edges))
	}
}
