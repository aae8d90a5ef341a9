// Package gate implements the three-label gate alphabet and Circuit type
// of §6 ("Gate alphabet. Exactly three opaque labels: one one-qubit gate,
// one two-qubit gate, and a barrier marker. No gate parameters.").
//
// The original implementation bound these opaque labels to concrete
// Qiskit gate objects (an H gate for the one-qubit label, a CX gate for
// the two-qubit label) purely so that a QuantumCircuit would accept them;
// nothing downstream inspected which concrete gate was used. QUEKNO-RX
// keeps the labels fully opaque — OneQubit, TwoQubit, and Barrier carry no
// operator semantics at all, only an arity — since no component of this
// system simulates or inspects gate identity, only circuit connectivity
// and shape (size, depth).
package gate
