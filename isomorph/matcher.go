package isomorph

import (
	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/qgraph"
)

// DefaultBudget bounds the number of candidate-pair extensions a Matcher
// will try before giving up, matching the runtime constant VF2_CALL_LIMIT's
// default. It is generous enough for the small subgraphs this package is
// used on (a handful of glink edges against an architecture graph of a few
// dozen qubits) while still guaranteeing termination on pathological
// inputs.
const DefaultBudget = 10_000

// Matcher decides subgraph embedding with a bounded VF2-style search. The
// zero value uses DefaultBudget.
type Matcher struct {
	// Budget caps the number of recursive extension attempts. Zero means
	// DefaultBudget.
	Budget int
}

// Embeds reports whether small embeds into large as a subgraph: an
// injective node mapping exists under which every edge of small maps to an
// edge of large (§4.3's "non-induced embedding"). If the search exhausts
// its call budget first, Embeds returns false.
func (m Matcher) Embeds(small, large *qgraph.Graph) bool {
	found, _ := m.EmbedsWithTrace(small, large)
	return found
}

// EmbedsWithTrace behaves like Embeds but additionally returns
// ErrBudgetExceeded when the search was inconclusive because the budget ran
// out, letting callers distinguish "refuted" from "unknown" if they care
// to.
func (m Matcher) EmbedsWithTrace(small, large *qgraph.Graph) (bool, error) {
	budget := m.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	if small.NumNodes() == 0 {
		return true, nil
	}
	if small.NumNodes() > large.NumNodes() || small.NumEdges() > large.NumEdges() {
		return false, nil
	}

	s := &searcher{
		small:    small,
		large:    large,
		smallOf:  small.Nodes(),
		mapping:  make(map[node.Node]node.Node, small.NumNodes()),
		used:     make(map[node.Node]bool, small.NumNodes()),
		budget:   budget,
		degOrder: orderByDegreeDesc(small),
	}
	ok := s.search(0)
	if s.budget <= 0 {
		return false, ErrBudgetExceeded
	}
	return ok, nil
}

// orderByDegreeDesc returns g's nodes sorted by descending degree, so the
// search fixes the most-constrained nodes first (a standard VF2
// optimisation: failing fast on high-degree nodes prunes the tree sooner).
func orderByDegreeDesc(g *qgraph.Graph) []node.Node {
	ns := g.Nodes()
	deg := make(map[node.Node]int, len(ns))
	for _, n := range ns {
		deg[n] = len(g.Neighbours(n))
	}
	out := make([]node.Node, len(ns))
	copy(out, ns)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && deg[out[j-1]] < deg[out[j]] {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

type searcher struct {
	small, large *qgraph.Graph
	smallOf      []node.Node // small's nodes in the order Nodes() returned (used only for size)
	degOrder     []node.Node // candidate-pair visitation order for small's nodes
	mapping      map[node.Node]node.Node
	used         map[node.Node]bool // large-side nodes already claimed
	budget       int
}

// search tries to extend the partial mapping to cover degOrder[idx:]. It
// returns true the instant a complete, edge-consistent mapping is found.
func (s *searcher) search(idx int) bool {
	if s.budget <= 0 {
		return false
	}
	if idx == len(s.degOrder) {
		return true
	}
	s.budget--

	u := s.degOrder[idx]
	for _, v := range s.large.Nodes() {
		if s.used[v] {
			continue
		}
		if !s.consistent(u, v) {
			continue
		}
		s.mapping[u] = v
		s.used[v] = true
		if s.search(idx + 1) {
			return true
		}
		delete(s.mapping, u)
		delete(s.used, v)
		if s.budget <= 0 {
			return false
		}
	}
	return false
}

// consistent reports whether mapping u -> v preserves every edge between u
// and an already-mapped small node.
func (s *searcher) consistent(u, v node.Node) bool {
	for _, w := range s.small.Neighbours(u) {
		mw, ok := s.mapping[w]
		if !ok {
			continue
		}
		if !s.large.HasEdge(v, mw) {
			return false
		}
	}
	return true
}
