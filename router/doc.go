// Package router implements SelfRouter (§4.7): it replays an assembled
// circuit against its originating glink.Chain, inserting SWAPs wherever a
// two-qubit gate's physical qubits are not adjacent in the architecture
// graph, and verifies that the actual routing cost it incurred — and the
// resulting gate-count or depth delta — agree with the chain's predicted
// cost bit-exactly. This is both the benchmark's self-test and the
// canonical "optimally routed" reference circuit that ships alongside
// the unrouted one.
package router
