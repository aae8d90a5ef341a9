// Package isomorph decides whether one graph embeds into another as a
// (non-induced) subgraph, via a VF2-style backtracking matcher with a
// bounded call budget (§4.3 of the specification).
//
// The matcher extends a partial node mapping one candidate pair at a time,
// pruning branches whose adjacency structure cannot be completed to a valid
// embedding. Exceeding the configured call budget aborts the search and is
// treated as "no embedding found" rather than as an error: the caller
// (GlinkPredicate) only needs a boolean answer and a bound on search cost,
// never a proof of non-existence.
package isomorph
