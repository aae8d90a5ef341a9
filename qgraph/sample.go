package qgraph

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/dnngky/quekno-rx/node"
)

// RandomSubgraph draws m edges uniformly without replacement from E(g) and
// returns their edge-induced subgraph: the node set is exactly the set of
// endpoints touched by the sampled edges (§4.1). Precondition: 1 <= m <=
// NumEdges(); violating it returns ErrSampleSizeInvalid.
func (g *Graph) RandomSubgraph(m int, rng *rand.Rand) (*Graph, error) {
	edges := g.Edges()
	if m < 1 || m > len(edges) {
		return nil, fmt.Errorf("qgraph: RandomSubgraph(%d) with |E|=%d: %w", m, len(edges), ErrSampleSizeInvalid)
	}

	idxs := make([]int, m)
	sampleuv.WithoutReplacement(idxs, len(edges), rng)

	sub := NewEmpty(g.name + ".subgraph")
	for _, i := range idxs {
		e := edges[i]
		sub.AddNode(e.A)
		sub.AddNode(e.B)
		// Edge already deduplicated by WithoutReplacement's index uniqueness.
		_ = sub.AddEdge(e)
	}
	return sub, nil
}

// RandomNodes draws n nodes from g with replacement (§4.1). If includeAll is
// set, the first NumNodes() draws are guaranteed to be a uniform permutation
// of V(g) (so every node appears at least once) and the remainder are i.i.d.
// uniform; this requires n >= NumNodes(), else ErrInsufficientPopulation.
func (g *Graph) RandomNodes(n int, includeAll bool, rng *rand.Rand) ([]node.Node, error) {
	nodes := g.Nodes()
	if includeAll && n < len(nodes) {
		return nil, fmt.Errorf("qgraph: RandomNodes(%d, includeAll) with |V|=%d: %w", n, len(nodes), ErrInsufficientPopulation)
	}

	out := make([]node.Node, 0, n)
	remaining := n
	if includeAll {
		perm := rng.Perm(len(nodes))
		for _, i := range perm {
			out = append(out, nodes[i])
		}
		remaining -= len(nodes)
	}
	for i := 0; i < remaining; i++ {
		out = append(out, nodes[rng.Intn(len(nodes))])
	}
	return out, nil
}

// RandomEdges draws n edges from g with replacement (§4.1), analogous to
// RandomNodes. includeAll defaults to true in the original call sites (the
// back two-qubit gate block of the circuit assembler relies on it), but is
// an explicit parameter here since the predicate differs by caller.
func (g *Graph) RandomEdges(n int, includeAll bool, rng *rand.Rand) ([]node.Edge, error) {
	edges := g.Edges()
	if includeAll && n < len(edges) {
		return nil, fmt.Errorf("qgraph: RandomEdges(%d, includeAll) with |E|=%d: %w", n, len(edges), ErrInsufficientPopulation)
	}

	out := make([]node.Edge, 0, n)
	remaining := n
	if includeAll {
		perm := rng.Perm(len(edges))
		for _, i := range perm {
			out = append(out, edges[i])
		}
		remaining -= len(edges)
	}
	for i := 0; i < remaining; i++ {
		out = append(out, edges[rng.Intn(len(edges))])
	}
	return out, nil
}
