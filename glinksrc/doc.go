// Package glinksrc implements PermutationSource (§4.4): three producer
// regimes, each a lazy, potentially infinite stream of swap-mode
// permutations, used by ChainBuilder to grow a glink chain.
//
//   - Opt1Stream: single swap per yield, finite (one per edge of AG).
//   - Opt2Stream: one or two consecutive swaps per yield, finite.
//   - DepthStream: a layer of vertex-disjoint swaps per yield, unbounded.
//
// Streams are expressed as iter.Seq[permutation.Permutation] (Go's
// standard range-over-func iterator shape), so callers consume them with
// an ordinary range loop and a "break" to stop early — the natural
// expression of "lazy, potentially infinite" in idiomatic Go.
package glinksrc
