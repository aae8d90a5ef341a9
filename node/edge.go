package node

import "fmt"

// Edge is an unordered pair of Nodes, or a "null edge" when both endpoints
// are null. Edge is a value type: two Edges are equal (via Equal) when they
// name the same unordered pair of non-null endpoints.
type Edge struct {
	A, B Node
}

// NewEdge constructs an edge between a and b in the given order. The order
// is not semantically meaningful (Edge is unordered) but is preserved for
// deterministic iteration (Endpoints, String).
func NewEdge(a, b Node) Edge {
	return Edge{A: a, B: b}
}

// NullEdge returns the distinguished "no edge" sentinel, used by the
// depth-regime permutation source (glinksrc) as an early-termination
// candidate.
func NullEdge() Edge {
	return Edge{A: NullNode, B: NullNode}
}

// IsNull reports whether e is the null edge.
func (e Edge) IsNull() bool {
	return e.A.IsNull() && e.B.IsNull()
}

// Equal reports set-equality of endpoints: e and other name the same edge
// iff {e.A, e.B} == {other.A, other.B} as sets of non-null nodes. A null
// edge is never equal to anything, including another null edge.
func (e Edge) Equal(other Edge) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	if e.A == other.A && e.B == other.B {
		return true
	}
	return e.A == other.B && e.B == other.A
}

// Endpoints returns the edge's two endpoints in construction order.
func (e Edge) Endpoints() (Node, Node) {
	return e.A, e.B
}

// Has reports whether v is one of the edge's endpoints.
func (e Edge) Has(v Node) bool {
	return !e.IsNull() && (e.A == v || e.B == v)
}

// Other returns the endpoint of e that is not v. It panics if v is not an
// endpoint of e, which would indicate a programming error at the call site
// (callers always check Has or already know v is an endpoint).
func (e Edge) Other(v Node) Node {
	switch {
	case e.A == v:
		return e.B
	case e.B == v:
		return e.A
	default:
		panic(fmt.Sprintf("node: %v is not an endpoint of %v", v, e))
	}
}

// String renders the edge as "A-B", or "NULL-EDGE" if e is null.
func (e Edge) String() string {
	if e.IsNull() {
		return "NULL-EDGE"
	}
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

// Disjoint reports whether the given edges are pairwise vertex-disjoint.
// Null edges are ignored (they carry no vertices), matching is_disjoint in
// the original implementation, which filters out the null edge before
// counting distinct endpoints.
func Disjoint(edges []Edge) bool {
	seen := make(map[Node]struct{}, 2*len(edges))
	for _, e := range edges {
		if e.IsNull() {
			continue
		}
		for _, v := range [2]Node{e.A, e.B} {
			if _, ok := seen[v]; ok {
				return false
			}
			seen[v] = struct{}{}
		}
	}
	return true
}
