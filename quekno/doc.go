// Package quekno is the composition root for the glink-chain builder and
// circuit assembler (§2 dataflow): it wires chainbuilder, assembler,
// router, and metrics into the single entry point spec §1 calls out —
// "a constructor for (circuit, routed-circuit, metrics) triples" — the
// equivalent of the original lib/quekno.py QUEKNO class and of the
// teacher's builder.BuildGraph top-level entry point.
package quekno
