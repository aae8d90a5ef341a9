// Package chainbuilder implements ChainBuilder and the strong-glink
// predicate (§4.3, §4.5): it grows a glink.Chain from an architecture
// graph until the chain's predicted cost reaches a target.
//
// Growth is candidate-and-retry: draw a Gaussian-sized candidate
// subgraph, draw permutations from a glinksrc.Stream against it until one
// forms a strong glink with the chain's tail, or give up and redraw the
// subgraph after a configured number of attempts. Subgraph-size sampling
// uses gonum's stat/distuv.Normal, whose Src field is an
// golang.org/x/exp/rand.Source — a different type than math/rand.Rand and
// not satisfied by it. Rather than carry two caller-supplied seeds, the
// builder draws one int64 from the caller's *math/rand.Rand to seed a
// private x/exp/rand source used only for the Gaussian draw; every other
// draw (edges, permutations, shuffles) still comes from the caller's
// stream, so a given seed still reproduces a given chain.
package chainbuilder
