package glinksrc

import (
	"iter"
	"math/rand"

	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// Opt1Stream shuffles E(AG) and yields each edge as a 1-transposition
// swap-mode permutation (§4.4 "opt1 — single swap"). The stream is finite:
// exactly |E(AG)| permutations.
func Opt1Stream(ag *qgraph.Graph, rng *rand.Rand) iter.Seq[permutation.Permutation] {
	edges := shuffledEdges(ag, rng)
	return func(yield func(permutation.Permutation) bool) {
		for _, e := range edges {
			if !yield(singleSwap(e)) {
				return
			}
		}
	}
}

func shuffledEdges(ag *qgraph.Graph, rng *rand.Rand) []node.Edge {
	edges := ag.Edges()
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	return edges
}

func singleSwap(e node.Edge) permutation.Permutation {
	return permutation.New(permutation.Swap, e)
}
