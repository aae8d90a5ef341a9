// Package assembler implements CircuitAssembler (§4.6): it walks a
// glink.Chain in order, applying each glink's permutation to a running
// logical layout and emitting a front-gate block (forced by the
// permutation's displacement of AG's edges) followed by a shuffled
// back-gate block (random padding drawn from the glink's subgraph).
package assembler
