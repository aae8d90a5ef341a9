package glinksrc

import (
	"iter"
	"math/rand"

	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// DepthStream is an unbounded stream of parallel non-overlapping-swap
// permutations (§4.4 "depth — parallel non-overlapping swaps"). Each yield:
// seeds the selection with one uniformly chosen edge of AG, then repeatedly
// filters the candidate set (E(AG) plus one null edge) to edges
// vertex-disjoint from everything already selected and picks uniformly
// among the survivors, stopping the moment the null edge is picked. The
// null edge gives the layer a geometric-style early termination whose
// parameter is the ratio of null to real candidates at each step — this is
// intentional, not a bug, and is preserved exactly.
func DepthStream(ag *qgraph.Graph, rng *rand.Rand) iter.Seq[permutation.Permutation] {
	return func(yield func(permutation.Permutation) bool) {
		for {
			edges := ag.Edges()
			seed := edges[rng.Intn(len(edges))]
			selected := []node.Edge{seed}

			for {
				cand := disjointCandidates(edges, selected)
				cand = append(cand, node.NullEdge())
				pick := cand[rng.Intn(len(cand))]
				if pick.IsNull() {
					break
				}
				selected = append(selected, pick)
			}

			if !yield(permutation.New(permutation.Swap, selected...)) {
				return
			}
		}
	}
}

// disjointCandidates returns the subset of edges that is vertex-disjoint
// from every edge already in selected.
func disjointCandidates(edges, selected []node.Edge) []node.Edge {
	out := make([]node.Edge, 0, len(edges))
	for _, e := range edges {
		if node.Disjoint(append(append([]node.Edge(nil), selected...), e)) {
			out = append(out, e)
		}
	}
	return out
}
