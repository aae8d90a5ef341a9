package qgraph

import (
	"fmt"
	"sort"

	gonumGraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dnngky/quekno-rx/node"
)

// Graph is an undirected, simple, node-labelled graph (§3 of the
// specification). The zero value is not usable; construct with NewEmpty or
// FromEdges.
type Graph struct {
	backing *simple.UndirectedGraph
	name    string
}

func id(n node.Node) int64 {
	return int64(n.Val())
}

func fromID(id int64) node.Node {
	return node.Node(id)
}

// NewEmpty returns an empty graph with the given diagnostic name (used only
// for metrics; architecture graphs set it to their canonical name, e.g.
// "tokyo").
func NewEmpty(name string) *Graph {
	return &Graph{backing: simple.NewUndirectedGraph(), name: name}
}

// FromEdges builds a graph from a raw edge list, relabelling endpoints
// consecutively from 0..k-1 in the sort order of the distinct labels
// encountered (§4.1). It rejects an edge list containing a parallel edge or
// a self-loop.
func FromEdges(edges [][2]int) (*Graph, error) {
	seen := make(map[int]struct{})
	for _, e := range edges {
		seen[e[0]] = struct{}{}
		seen[e[1]] = struct{}{}
	}
	old := make([]int, 0, len(seen))
	for v := range seen {
		old = append(old, v)
	}
	sort.Ints(old)

	newIndex := make(map[int]int, len(old))
	for i, v := range old {
		newIndex[v] = i
	}

	g := NewEmpty("graph")
	for i := range old {
		g.backing.AddNode(simple.Node(i))
	}

	type key struct{ a, b int }
	added := make(map[key]struct{}, len(edges))
	for _, e := range edges {
		a, b := newIndex[e[0]], newIndex[e[1]]
		if a == b {
			return nil, fmt.Errorf("qgraph: edge (%d, %d): %w", e[0], e[1], ErrSelfLoop)
		}
		k := key{a, b}
		if a > b {
			k = key{b, a}
		}
		if _, dup := added[k]; dup {
			return nil, fmt.Errorf("qgraph: edge (%d, %d): %w", e[0], e[1], ErrParallelEdge)
		}
		added[k] = struct{}{}
		g.backing.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}
	return g, nil
}

// Name returns the graph's diagnostic name.
func (g *Graph) Name() string {
	return g.name
}

// SetName overrides the graph's diagnostic name.
func (g *Graph) SetName(name string) {
	g.name = name
}

// NumNodes returns |V(g)|.
func (g *Graph) NumNodes() int {
	return g.backing.Nodes().Len()
}

// NumEdges returns |E(g)|.
func (g *Graph) NumEdges() int {
	return g.backing.Edges().Len()
}

// Nodes returns the graph's nodes in ascending label order.
func (g *Graph) Nodes() []node.Node {
	it := g.backing.Nodes()
	out := make([]node.Node, 0, it.Len())
	for it.Next() {
		out = append(out, fromID(it.Node().ID()))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Edges returns the graph's edges in a stable (endpoint-sorted) order.
func (g *Graph) Edges() []node.Edge {
	it := g.backing.Edges()
	out := make([]node.Edge, 0, it.Len())
	for it.Next() {
		e := it.Edge()
		a, b := fromID(e.From().ID()), fromID(e.To().ID())
		if b.Less(a) {
			a, b = b, a
		}
		out = append(out, node.NewEdge(a, b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}

// HasNode reports whether n is in the graph.
func (g *Graph) HasNode(n node.Node) bool {
	return g.backing.Node(id(n)) != nil
}

// HasEdge reports whether u and v are both in the graph and adjacent.
func (g *Graph) HasEdge(u, v node.Node) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	return g.backing.HasEdgeBetween(id(u), id(v))
}

// Neighbours returns v's neighbours in ascending label order.
func (g *Graph) Neighbours(v node.Node) []node.Node {
	var adj gonumGraph.Nodes = g.backing.From(id(v))
	out := make([]node.Node, 0, adj.Len())
	for adj.Next() {
		out = append(out, fromID(adj.Node().ID()))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// IncidentEdges returns the edges incident to src, oriented (src, neighbour).
func (g *Graph) IncidentEdges(src node.Node) []node.Edge {
	neighbours := g.Neighbours(src)
	out := make([]node.Edge, len(neighbours))
	for i, n := range neighbours {
		out[i] = node.NewEdge(src, n)
	}
	return out
}

// Copy returns an independent deep copy of g.
func (g *Graph) Copy() *Graph {
	cp := NewEmpty(g.name)
	for _, n := range g.Nodes() {
		cp.backing.AddNode(simple.Node(id(n)))
	}
	for _, e := range g.Edges() {
		cp.backing.SetEdge(simple.Edge{F: simple.Node(id(e.A)), T: simple.Node(id(e.B))})
	}
	return cp
}

// Equal reports whether g and other have the same node set and the same
// edge set (§3: "Equality: same node set and same edge set").
func (g *Graph) Equal(other *Graph) bool {
	if g.NumNodes() != other.NumNodes() || g.NumEdges() != other.NumEdges() {
		return false
	}
	for _, n := range g.Nodes() {
		if !other.HasNode(n) {
			return false
		}
	}
	for _, e := range g.Edges() {
		if !other.HasEdge(e.A, e.B) {
			return false
		}
	}
	return true
}

// String renders the graph's node and edge sets, in the teacher's
// Graph(\n nodes: ...\n edges: ...\n) style.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(\n  nodes: %v\n  edges: %v\n)", g.Nodes(), g.Edges())
}
