package glink_test

import (
	"testing"

	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

func sampleGraph(t *testing.T) *qgraph.Graph {
	t.Helper()
	g, err := qgraph.FromEdges([][2]int{{0, 1}})
	if err != nil {
		t.Fatalf("FromEdges() = %v", err)
	}
	return g
}

func TestChainHeadTail(t *testing.T) {
	var c glink.Chain
	head := glink.New(sampleGraph(t), permutation.Identity())
	c.Append(head)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if c.Head().Subgraph != head.Subgraph {
		t.Fatalf("Head() returned a different glink than appended")
	}
	if c.Tail().Subgraph != head.Subgraph {
		t.Fatalf("Tail() should equal Head() for a single-glink chain")
	}
}

func TestChainCostSumsNonHeadGlinksOnly(t *testing.T) {
	var c glink.Chain
	c.Append(glink.New(sampleGraph(t), permutation.Identity()))

	swap1 := permutation.New(permutation.Swap, node.NewEdge(node.Node(0), node.Node(1)))
	swap2 := permutation.New(permutation.Swap,
		node.NewEdge(node.Node(0), node.Node(1)),
		node.NewEdge(node.Node(1), node.Node(2)),
	)
	c.Append(glink.New(sampleGraph(t), swap1))
	c.Append(glink.New(sampleGraph(t), swap2))

	if got, want := c.Cost(false), 3; got != want {
		t.Fatalf("Cost(gate regime) = %d, want %d (1 + 2)", got, want)
	}
	if got, want := c.Cost(true), 2; got != want {
		t.Fatalf("Cost(depth regime) = %d, want %d (1 per non-head glink)", got, want)
	}
}

func TestChainHeadPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Head() on empty chain did not panic")
		}
	}()
	var c glink.Chain
	c.Head()
}

func TestNonHeadGlinksEmptyForSingleGlinkChain(t *testing.T) {
	var c glink.Chain
	c.Append(glink.New(sampleGraph(t), permutation.Identity()))
	if got := c.NonHeadGlinks(); len(got) != 0 {
		t.Fatalf("NonHeadGlinks() = %v, want empty for a single-glink chain", got)
	}
}
