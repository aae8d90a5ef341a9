// Package qgraph implements GraphOps (§4.1 of the specification): an
// undirected, simple, node-labelled graph with the sampling and permutation
// primitives the glink-chain builder needs.
//
// Internally a Graph wraps a gonum.org/v1/gonum/graph/simple.UndirectedGraph
// (node IDs are the int64 cast of the node's label) instead of a hand-rolled
// adjacency list, so insertion, lookup and edge iteration reuse gonum's
// tested implementation rather than reinventing one. Graphs are values from
// the caller's perspective (Copy gives an independent graph) even though the
// zero value is not usable — construct with NewEmpty or FromEdges.
//
// Every randomised method (RandomSubgraph, RandomNodes, RandomEdges) takes
// an explicit *rand.Rand so that callers can seed for reproducibility, per
// §5 of the specification.
package qgraph
