package glinksrc

import (
	"iter"
	"math/rand"

	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// Opt2Stream shuffles E(AG); for each edge (a,b) it collects the edges
// incident to a or b (excluding (a,b) itself), shuffles that set, and for
// each candidate (c,d) flips a bias-weighted coin to decide between
// yielding the single swap (a,b) or the consecutive pair [(a,b), (c,d)]
// normalised so the two transpositions share an endpoint in the "correct
// position" (§4.4 "opt2 — 1-or-2 consecutive swaps").
//
// One subtlety is preserved exactly as the reference implementation
// exhibits it: when a pair is emitted, the normalising rewrite of (a,b)
// persists across subsequent candidates for the same outer edge — a
// candidate later in the same inc-set sees the already-rewritten (a,b),
// not the original. This is not corrected; it is part of the regime's
// observed behaviour.
func Opt2Stream(ag *qgraph.Graph, bias float64, rng *rand.Rand) iter.Seq[permutation.Permutation] {
	edges1 := shuffledEdges(ag, rng)
	return func(yield func(permutation.Permutation) bool) {
		for _, e1 := range edges1 {
			src1, dst1 := e1.A, e1.B

			incident := incidentMinus(ag, src1, dst1, node.NewEdge(src1, dst1))
			rng.Shuffle(len(incident), func(i, j int) { incident[i], incident[j] = incident[j], incident[i] })

			for _, e2 := range incident {
				if rng.Float64() < 0.5-bias {
					if !yield(singleSwap(node.NewEdge(src1, dst1))) {
						return
					}
					continue
				}

				src2, dst2 := e2.A, e2.B
				switch {
				case src1 == src2:
					src1, dst1 = dst1, src1
				case src1 == dst2:
					src1, dst1 = dst1, src1
					src2, dst2 = dst2, src2
				case dst1 == dst2:
					src2, dst2 = dst2, src2
				}
				p := permutation.New(permutation.Swap, node.NewEdge(src1, dst1), node.NewEdge(src2, dst2))
				if !yield(p) {
					return
				}
			}
		}
	}
}

// incidentMinus returns the union of a's and b's incident edges, excluding
// exclude (by set-equality), deduplicated.
func incidentMinus(ag *qgraph.Graph, a, b node.Node, exclude node.Edge) []node.Edge {
	seen := make(map[node.Edge]bool)
	out := make([]node.Edge, 0)
	add := func(es []node.Edge) {
		for _, e := range es {
			if e.Equal(exclude) {
				continue
			}
			k := canonical(e)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, e)
		}
	}
	add(ag.IncidentEdges(a))
	add(ag.IncidentEdges(b))
	return out
}

// canonical returns e with endpoints ordered by label, so set-equal edges
// hash identically regardless of orientation.
func canonical(e node.Edge) node.Edge {
	if e.B.Less(e.A) {
		return node.NewEdge(e.B, e.A)
	}
	return e
}
