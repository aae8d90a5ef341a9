package assembler

import (
	"fmt"
	"math"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/gate"
	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/qgraph"
)

// pendingGate is an unresolved back gate: either a two-qubit gate on an
// edge's endpoints or a one-qubit gate on a single node, resolved to
// physical qubits only once the shuffle order is fixed.
type pendingGate struct {
	edge    node.Edge
	single  node.Node
	twoQbit bool
}

// Assemble runs §4.6 over chain, producing a gate stream over
// |V(AG)| qubits. cfg supplies the architecture graph, the RNG, the
// back-gate shape constants (edge-count variance, one-to-two-qubit-gate
// ratio), and whether to emit barriers between glinks.
func Assemble(cfg *config.Config, chain *glink.Chain) (*gate.Circuit, error) {
	ag := cfg.ArchGraph
	layout := ag.Nodes()
	circuit := gate.New(ag.NumNodes())

	glinks := chain.Glinks()
	for i, g := range glinks {
		permuted, err := g.Perm.Apply(layout, false)
		if err != nil {
			return nil, fmt.Errorf("assembler: glink %d: %w", i, err)
		}
		if sameSequence(layout, permuted) {
			return nil, fmt.Errorf("assembler: glink %d: %w", i, ErrIdentityPermutation)
		}

		frontEdges := frontGates(ag, layout, permuted)

		back2, err := backTwoQubitGates(cfg, g)
		if err != nil {
			return nil, fmt.Errorf("assembler: glink %d: %w", i, err)
		}
		back1, err := backOneQubitGates(cfg, g, len(frontEdges)+len(back2))
		if err != nil {
			return nil, fmt.Errorf("assembler: glink %d: %w", i, err)
		}

		pending := make([]pendingGate, 0, len(back2)+len(back1))
		for _, e := range back2 {
			pending = append(pending, pendingGate{edge: e, twoQbit: true})
		}
		for _, n := range back1 {
			pending = append(pending, pendingGate{single: n})
		}
		cfg.Rand.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })

		gates := make([]gate.Gate, 0, len(frontEdges)+len(pending))
		for _, e := range frontEdges {
			gates = append(gates, gate.TwoQubitGate(indexOf(permuted, e.A), indexOf(permuted, e.B)))
		}
		for _, p := range pending {
			if p.twoQbit {
				gates = append(gates, gate.TwoQubitGate(indexOf(permuted, p.edge.A), indexOf(permuted, p.edge.B)))
			} else {
				gates = append(gates, gate.OneQubitGate(indexOf(permuted, p.single)))
			}
		}
		circuit.Append(gates...)

		if cfg.AddBarriers && i < len(glinks)-1 {
			circuit.Append(gate.BarrierGate())
		}

		layout = permuted
	}
	return circuit, nil
}

// frontGates returns the AG edges whose endpoints' relative positions
// differ between the layouts before and after the glink's permutation
// (§4.6 step 2): these force any router to realise the permutation.
func frontGates(ag *qgraph.Graph, before, after []node.Node) []node.Edge {
	var front []node.Edge
	for _, e := range ag.Edges() {
		oA, oB := indexOf(before, e.A), indexOf(before, e.B)
		pA, pB := indexOf(after, e.A), indexOf(after, e.B)
		if samePair(oA, oB, pA, pB) {
			continue
		}
		front = append(front, e)
	}
	return front
}

func backTwoQubitGates(cfg *config.Config, g glink.Glink) ([]node.Edge, error) {
	r := 1 + cfg.Rand.Intn(4)
	n2 := int(math.Ceil(float64(g.Subgraph.NumEdges()) * (1 + cfg.Constants.RandEdgesVar*float64(r))))
	return g.Subgraph.RandomEdges(n2, true, cfg.Rand)
}

func backOneQubitGates(cfg *config.Config, g glink.Glink, frontPlusBack2 int) ([]node.Node, error) {
	n1 := int(math.Ceil(float64(frontPlusBack2) * cfg.QBGRatio))
	return g.Subgraph.RandomNodes(n1, false, cfg.Rand)
}

func samePair(oA, oB, pA, pB int) bool {
	return (oA == pA && oB == pB) || (oA == pB && oB == pA)
}

func indexOf(seq []node.Node, n node.Node) int {
	for i, v := range seq {
		if v == n {
			return i
		}
	}
	return -1
}

func sameSequence(a, b []node.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
