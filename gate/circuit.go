package gate

// Circuit is an ordered gate stream over a fixed number of physical
// qubits (§4.6, §4.7).
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

// New constructs an empty circuit over numQubits physical qubits.
func New(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Append adds gates to the end of the circuit, in order.
func (c *Circuit) Append(gates ...Gate) {
	c.Gates = append(c.Gates, gates...)
}

// Size returns the circuit's total instruction count, barriers included
// (§6's `gate_size`/`output.size` metric).
func (c *Circuit) Size() int {
	return len(c.Gates)
}

// Depth returns the circuit's depth: the length of the longest chain of
// gates connected by a shared qubit. A Barrier touches every qubit and so
// synchronises depth across the whole circuit, matching the scheduling
// role a barrier plays in the reference implementation.
func (c *Circuit) Depth() int {
	layer := make([]int, c.NumQubits)
	for _, g := range c.Gates {
		if g.Kind == Barrier {
			d := 0
			for _, l := range layer {
				if l > d {
					d = l
				}
			}
			for i := range layer {
				layer[i] = d
			}
			continue
		}
		d := 0
		for _, q := range g.Qubits {
			if layer[q] > d {
				d = layer[q]
			}
		}
		d++
		for _, q := range g.Qubits {
			layer[q] = d
		}
	}
	d := 0
	for _, l := range layer {
		if l > d {
			d = l
		}
	}
	return d
}
