package node_test

import (
	"testing"

	"github.com/dnngky/quekno-rx/node"
)

func TestEdgeEqualIsUnordered(t *testing.T) {
	e1 := node.NewEdge(node.Node(1), node.Node(2))
	e2 := node.NewEdge(node.Node(2), node.Node(1))
	if !e1.Equal(e2) {
		t.Fatalf("Edge{1,2}.Equal(Edge{2,1}) = false, want true")
	}
}

func TestNullEdgeNeverEqual(t *testing.T) {
	if node.NullEdge().Equal(node.NullEdge()) {
		t.Fatalf("NullEdge().Equal(NullEdge()) = true, want false")
	}
}

func TestEdgeOther(t *testing.T) {
	e := node.NewEdge(node.Node(1), node.Node(2))
	if got := e.Other(node.Node(1)); got != node.Node(2) {
		t.Fatalf("Other(1) = %v, want 2", got)
	}
	if got := e.Other(node.Node(2)); got != node.Node(1) {
		t.Fatalf("Other(2) = %v, want 1", got)
	}
}

func TestDisjoint(t *testing.T) {
	disjoint := []node.Edge{
		node.NewEdge(node.Node(1), node.Node(2)),
		node.NewEdge(node.Node(3), node.Node(4)),
	}
	if !node.Disjoint(disjoint) {
		t.Fatalf("Disjoint(%v) = false, want true", disjoint)
	}

	overlapping := []node.Edge{
		node.NewEdge(node.Node(1), node.Node(2)),
		node.NewEdge(node.Node(2), node.Node(3)),
	}
	if node.Disjoint(overlapping) {
		t.Fatalf("Disjoint(%v) = true, want false", overlapping)
	}
}

func TestDisjointIgnoresNullEdge(t *testing.T) {
	edges := []node.Edge{
		node.NewEdge(node.Node(1), node.Node(2)),
		node.NullEdge(),
	}
	if !node.Disjoint(edges) {
		t.Fatalf("Disjoint with a null edge present = false, want true")
	}
}
