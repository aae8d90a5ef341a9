package router

import (
	"fmt"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/gate"
	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/node"
)

// Result is the outcome of a successful Route: the routed circuit plus
// the true cost incurred while routing it.
type Result struct {
	Routed   *gate.Circuit
	TrueCost int
}

// Route replays circuit against chain over ag, inserting SWAPs at glink
// boundaries wherever a two-qubit gate's physical qubits are not
// AG-adjacent (§4.7). predictedCost is the chain's predicted cost
// (glink.Chain.Cost); Route fails with ErrCostMismatch if the cost
// actually incurred differs, and with ErrDeltaMismatch/ErrNotAdjacent if
// the output circuit's shape does not corroborate that cost under the
// configured regime.
func Route(cfg *config.Config, circuit *gate.Circuit, chain *glink.Chain, predictedCost int) (*Result, error) {
	ag := cfg.ArchGraph
	depthRegime := cfg.OptType.IsDepthRegime()

	cursor := 0
	layout, err := chain.At(0).Perm.Apply(ag.Nodes(), false)
	if err != nil {
		return nil, fmt.Errorf("router: head layout: %w", err)
	}

	routed := gate.New(circuit.NumQubits)
	trueCost := 0

	i := 0
	for i < len(circuit.Gates) {
		g := circuit.Gates[i]
		switch g.Kind {
		case gate.Barrier:
			routed.Append(g)
			i++

		case gate.OneQubit:
			routed.Append(g)
			i++

		case gate.TwoQubit:
			u, v := layout[g.Qubits[0]], layout[g.Qubits[1]]
			if ag.HasEdge(u, v) {
				routed.Append(g)
				i++
				continue
			}

			cursor++
			if cursor >= chain.Len() {
				return nil, ErrTooFewGlinks
			}
			next := chain.At(cursor)

			for _, t := range next.Perm.Items() {
				if !ag.HasEdge(t.A, t.B) {
					return nil, fmt.Errorf("%w: swap %v is not an AG edge", ErrNotAdjacent, t)
				}
				routed.Append(gate.TwoQubitGate(indexOf(layout, t.A), indexOf(layout, t.B)))
			}
			layout, err = next.Perm.Apply(layout, false)
			if err != nil {
				return nil, fmt.Errorf("router: glink %d: %w", cursor, err)
			}
			if depthRegime {
				trueCost++
			} else {
				trueCost += next.Perm.Len()
			}
			// g is not consumed: retry under the new layout.

		default:
			return nil, ErrUnknownGate
		}
	}

	if cursor != chain.Len()-1 {
		return nil, ErrTooManyGlinks
	}
	if trueCost != predictedCost {
		return nil, fmt.Errorf("%w: predicted %d, got %d", ErrCostMismatch, predictedCost, trueCost)
	}

	if err := verifyDelta(depthRegime, circuit, routed, trueCost); err != nil {
		return nil, err
	}

	return &Result{Routed: routed, TrueCost: trueCost}, nil
}

// verifyDelta checks §4.7's final equalities: the routed circuit's size
// delta (gate regime) or depth delta (depth regime) over the input
// circuit must equal the true cost exactly.
func verifyDelta(depthRegime bool, in, out *gate.Circuit, trueCost int) error {
	if depthRegime {
		if delta := out.Depth() - in.Depth(); delta != trueCost {
			return fmt.Errorf("%w: depth delta %d, true cost %d", ErrDeltaMismatch, delta, trueCost)
		}
		return nil
	}
	if delta := out.Size() - in.Size(); delta != trueCost {
		return fmt.Errorf("%w: size delta %d, true cost %d", ErrDeltaMismatch, delta, trueCost)
	}
	return nil
}

func indexOf(seq []node.Node, n node.Node) int {
	for i, v := range seq {
		if v == n {
			return i
		}
	}
	return -1
}
