package glink

import (
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// Glink is a (subgraph, permutation) pair (§3): one link of a chain. The
// head glink's permutation is map-mode and sets the initial layout; every
// other glink's permutation is swap-mode and satisfies the strong-glink
// predicate against its predecessor.
type Glink struct {
	Subgraph *qgraph.Graph
	Perm     permutation.Permutation
}

// New constructs a Glink from its subgraph and permutation.
func New(subgraph *qgraph.Graph, perm permutation.Permutation) Glink {
	return Glink{Subgraph: subgraph, Perm: perm}
}

// Cost returns this glink's contribution to the chain's predicted cost
// under the given regime (§3 "Cost"): the transposition count in the gate
// regime, or 1 in the depth regime. The head glink's cost is never
// consulted by callers (the chain's cost sums only over non-head glinks),
// but Cost is total for any glink so callers don't need a special case.
func (g Glink) Cost(depthRegime bool) int {
	if depthRegime {
		return 1
	}
	return g.Perm.Len()
}
