// Package permutation implements the ordered-sequence-of-edges Permutation
// type described in §3/§4.2 of the specification: a sequence of node-pair
// edges applied to a node sequence in one of two modes.
//
// In Map mode, each (src, dst) pair means "wherever src appears, substitute
// dst"; all substitutions are computed from the original sequence and
// applied in one simultaneous pass. Map mode is used for the head glink's
// initial-layout permutation.
//
// In Swap mode, each (a, b) pair is a transposition applied in order to the
// current, possibly already-permuted sequence, at the positions a and b
// held in the input sequence. Swap mode is used for every
// chain-growth permutation.
package permutation
