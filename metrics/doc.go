// Package metrics builds the output-triple metrics mapping (§6 "Output
// triple"): opt_type, cost, archgraph name, average subgraph size, the
// realised one-to-two-qubit-gate ratio, the input circuit's gate-size and
// depth, the router's output gate-cost and depth-cost, the initial-layout
// permutation in one-line notation, the per-glink swap sequences, and the
// build's wall time.
package metrics
