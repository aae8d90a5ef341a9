package node

import "strconv"

// Node is a labelled vertex identity, newtyped over int per Design Notes §9
// of the specification. Node values are comparable and hashable, so they can
// be used directly as map keys and Go's == operator is accurate for any two
// non-null nodes.
type Node int

// NullNode is the distinguished "no node" sentinel. It is never a valid
// label: qgraph.FromEdges relabels consecutively from 0, and every
// archgraph constructor uses non-negative labels, so a sentinel far outside
// that range can never collide with a real label.
const NullNode Node = -1 << 62

// IsNull reports whether n is the null node.
func (n Node) IsNull() bool {
	return n == NullNode
}

// Equal reports whether n and other denote the same node. Per §3, a null
// node is never equal to anything, including another null node — this is
// why Equal must be used instead of == whenever a value might be null.
func (n Node) Equal(other Node) bool {
	if n.IsNull() || other.IsNull() {
		return false
	}
	return n == other
}

// Less orders nodes by label, used to give deterministic iteration order
// over node slices (canonical layout order, oneline permutation notation).
func (n Node) Less(other Node) bool {
	return n < other
}

// String renders the node's label, or "NULL-NODE" if n is null.
func (n Node) String() string {
	if n.IsNull() {
		return "NULL-NODE"
	}
	return strconv.Itoa(int(n))
}

// Val returns the underlying integer label. Panics are never raised here;
// callers that need to distinguish null from a real zero label should check
// IsNull first.
func (n Node) Val() int {
	return int(n)
}
