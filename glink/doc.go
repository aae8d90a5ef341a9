// Package glink implements Glink and Chain (§3, §9): a glink is a
// (subgraph, permutation) pair; a chain is the ordered sequence of glinks
// produced by ChainBuilder.
//
// §9's Design Notes call out the original's singly-linked-list chain as a
// reimplementation opportunity: "a simple owning vector of glinks (indices
// replacing next pointers) is a clean re-architecture." Chain follows that
// note directly — it owns a slice of Glink values rather than a linked
// list of next-pointers, giving O(1) indexed access, no per-node
// allocation, and trivial cache-friendly iteration, while preserving the
// same head/tail/append/iterate contract the rest of the system depends
// on.
package glink
