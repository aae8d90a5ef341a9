package router

import "errors"

var (
	// ErrTooFewGlinks indicates a two-qubit gate required a SWAP but the
	// chain had no further glink to supply one.
	ErrTooFewGlinks = errors.New("router: too few glinks to route circuit")

	// ErrTooManyGlinks indicates glinks remained unvisited after the
	// entire circuit was replayed.
	ErrTooManyGlinks = errors.New("router: too many glinks for circuit")

	// ErrUnknownGate indicates a gate of an unrecognised kind was
	// encountered.
	ErrUnknownGate = errors.New("router: unknown gate kind")

	// ErrCostMismatch indicates the cost actually incurred while routing
	// did not equal the chain's predicted cost.
	ErrCostMismatch = errors.New("router: true cost does not match predicted cost")

	// ErrDeltaMismatch indicates the routed circuit's size/depth delta
	// over the input circuit did not equal the true routing cost.
	ErrDeltaMismatch = errors.New("router: output/input delta does not match true cost")

	// ErrNotAdjacent indicates a two-qubit gate in the routed circuit
	// acts on qubits that are not adjacent in the architecture graph —
	// routing itself failed to restore adjacency.
	ErrNotAdjacent = errors.New("router: routed two-qubit gate is not on an AG-adjacent pair")
)
