package archgraph_test

import (
	"testing"

	"github.com/dnngky/quekno-rx/archgraph"
)

func TestTokyoShape(t *testing.T) {
	ag := archgraph.Tokyo()
	if ag.NumNodes() != 20 {
		t.Fatalf("NumNodes() = %d, want 20", ag.NumNodes())
	}
	if ag.Name() != "tokyo" {
		t.Fatalf("Name() = %q, want %q", ag.Name(), "tokyo")
	}
}

func TestRochesterShape(t *testing.T) {
	ag := archgraph.Rochester()
	if ag.NumNodes() != 53 {
		t.Fatalf("NumNodes() = %d, want 53", ag.NumNodes())
	}
	if ag.Name() != "rochester" {
		t.Fatalf("Name() = %q, want %q", ag.Name(), "rochester")
	}
}

func TestSycamore54Shape(t *testing.T) {
	ag := archgraph.Sycamore54()
	if ag.NumNodes() != 54 {
		t.Fatalf("NumNodes() = %d, want 54", ag.NumNodes())
	}
	if ag.NumEdges() != 87 {
		t.Fatalf("NumEdges() = %d, want 87", ag.NumEdges())
	}
}

func TestSycamoreDropsFaultyQubit(t *testing.T) {
	full := archgraph.Sycamore54()
	reduced := archgraph.Sycamore()
	if reduced.NumNodes() != full.NumNodes()-1 {
		t.Fatalf("NumNodes() = %d, want %d", reduced.NumNodes(), full.NumNodes()-1)
	}
	if reduced.Name() != "sycamore" {
		t.Fatalf("Name() = %q, want %q", reduced.Name(), "sycamore")
	}
}

func TestGridShape(t *testing.T) {
	ag := archgraph.Grid(2, 3)
	if ag.NumNodes() != 6 {
		t.Fatalf("NumNodes() = %d, want 6", ag.NumNodes())
	}
	if ag.NumEdges() != 7 { // 4 horizontal + 3 vertical
		t.Fatalf("NumEdges() = %d, want 7", ag.NumEdges())
	}
}

func TestLineShape(t *testing.T) {
	ag := archgraph.Line(5)
	if ag.NumNodes() != 5 || ag.NumEdges() != 4 {
		t.Fatalf("Line(5) = %d nodes, %d edges; want 5, 4", ag.NumNodes(), ag.NumEdges())
	}
}

func TestRingShape(t *testing.T) {
	ag := archgraph.Ring(5)
	if ag.NumNodes() != 5 || ag.NumEdges() != 5 {
		t.Fatalf("Ring(5) = %d nodes, %d edges; want 5, 5", ag.NumNodes(), ag.NumEdges())
	}
}

func TestStarShape(t *testing.T) {
	ag := archgraph.Star(5)
	if ag.NumNodes() != 5 || ag.NumEdges() != 4 {
		t.Fatalf("Star(5) = %d nodes, %d edges; want 5, 4", ag.NumNodes(), ag.NumEdges())
	}
	hub := ag.Nodes()[0]
	if len(ag.Neighbours(hub)) != 4 {
		t.Fatalf("hub has %d neighbours, want 4", len(ag.Neighbours(hub)))
	}
}

func TestNamedDispatchesFixedGraphs(t *testing.T) {
	ag, err := archgraph.Named("tokyo", archgraph.Params{})
	if err != nil {
		t.Fatalf("Named() err = %v", err)
	}
	if ag.NumNodes() != 20 {
		t.Fatalf("NumNodes() = %d, want 20", ag.NumNodes())
	}
}

func TestNamedDispatchesParametricGraphs(t *testing.T) {
	ag, err := archgraph.Named("grid", archgraph.Params{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("Named() err = %v", err)
	}
	if ag.NumNodes() != 6 {
		t.Fatalf("NumNodes() = %d, want 6", ag.NumNodes())
	}
}

func TestNamedRejectsUnknownName(t *testing.T) {
	if _, err := archgraph.Named("bogus", archgraph.Params{}); err == nil {
		t.Fatal("Named() err = nil, want error for unknown name")
	}
}

func TestNamedIsCaseInsensitive(t *testing.T) {
	if _, err := archgraph.Named("ROCHESTER", archgraph.Params{}); err != nil {
		t.Fatalf("Named() err = %v", err)
	}
}
