package permutation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dnngky/quekno-rx/node"
)

// Mode selects how a Permutation's transpositions are interpreted by Apply.
type Mode int

const (
	// Map mode: every (src, dst) substitution is computed against the
	// original sequence and applied in one simultaneous pass.
	Map Mode = iota
	// Swap mode: every (a, b) pair is a transposition, applied in order to
	// the sequence as modified by all prior transpositions. Each swap
	// exchanges the positions a and b held in the input sequence.
	Swap
)

func (m Mode) String() string {
	switch m {
	case Map:
		return "map"
	case Swap:
		return "swap"
	default:
		return "invalid"
	}
}

// Permutation is an ordered sequence of node.Edge transpositions together
// with a Mode (§3).
type Permutation struct {
	mode  Mode
	edges []node.Edge
}

// New builds a Permutation from an explicit edge sequence. Panics if mode is
// neither Map nor Swap, matching the teacher's convention of failing fast on
// programmer error rather than returning it.
func New(mode Mode, edges ...node.Edge) Permutation {
	if mode != Map && mode != Swap {
		panic(ErrInvalidMode)
	}
	cp := make([]node.Edge, len(edges))
	copy(cp, edges)
	return Permutation{mode: mode, edges: cp}
}

// Identity returns the empty permutation (§4.2).
func Identity() Permutation {
	return Permutation{mode: Map}
}

// Random pairs each node in nodes with a uniform random permutation of the
// same sequence, yielding a Map-mode Permutation (§4.2).
func Random(nodes []node.Node, rng *rand.Rand) Permutation {
	shuffled := make([]node.Node, len(nodes))
	copy(shuffled, nodes)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	edges := make([]node.Edge, len(nodes))
	for i, src := range nodes {
		edges[i] = node.NewEdge(src, shuffled[i])
	}
	return Permutation{mode: Map, edges: edges}
}

// Mode reports the permutation's application mode.
func (p Permutation) Mode() Mode {
	return p.mode
}

// Len returns the number of transpositions, i.e. the permutation's cost
// under the gate regime (§3).
func (p Permutation) Len() int {
	return len(p.edges)
}

// Items returns the permutation's transpositions in order.
func (p Permutation) Items() []node.Edge {
	out := make([]node.Edge, len(p.edges))
	copy(out, p.edges)
	return out
}

// Keys returns the first endpoint of every transposition, in order.
func (p Permutation) Keys() []node.Node {
	out := make([]node.Node, len(p.edges))
	for i, e := range p.edges {
		out[i] = e.A
	}
	return out
}

// Values returns the second endpoint of every transposition, in order.
func (p Permutation) Values() []node.Node {
	out := make([]node.Node, len(p.edges))
	for i, e := range p.edges {
		out[i] = e.B
	}
	return out
}

// Apply permutes original according to p's mode (§4.2):
//   - Map mode performs simultaneous substitution: src is looked up in a
//     table built once from p's edges, and the result is written in a
//     single pass over the original sequence. A src absent from original is
//     a no-op for that transposition.
//   - Swap mode applies each transposition in order as a position swap,
//     using the positions its endpoints occupy in original (the position
//     index is built once and not updated between transpositions); a
//     transposition endpoint absent from original is ErrNodeMissing.
//
// If inPlace is true, original is mutated directly and the return value is
// nil.
func (p Permutation) Apply(original []node.Node, inPlace bool) ([]node.Node, error) {
	switch p.mode {
	case Map:
		return p.applyMap(original, inPlace)
	case Swap:
		return p.applySwap(original, inPlace)
	default:
		return nil, ErrInvalidMode
	}
}

func (p Permutation) applyMap(original []node.Node, inPlace bool) ([]node.Node, error) {
	sigma := make(map[node.Node]node.Node, len(p.edges))
	for _, e := range p.edges {
		sigma[e.A] = e.B
	}

	permuted := original
	if !inPlace {
		permuted = make([]node.Node, len(original))
		copy(permuted, original)
	}
	for i, n := range original {
		if dst, ok := sigma[n]; ok {
			permuted[i] = dst
		}
	}
	if inPlace {
		return nil, nil
	}
	return permuted, nil
}

func (p Permutation) applySwap(original []node.Node, inPlace bool) ([]node.Node, error) {
	position := make(map[node.Node]int, len(original))
	for i, n := range original {
		position[n] = i
	}

	permuted := original
	if !inPlace {
		permuted = make([]node.Node, len(original))
		copy(permuted, original)
	}
	for _, e := range p.edges {
		i, ok := position[e.A]
		if !ok {
			return nil, fmt.Errorf("permutation: %w: %v", ErrNodeMissing, e.A)
		}
		j, ok := position[e.B]
		if !ok {
			return nil, fmt.Errorf("permutation: %w: %v", ErrNodeMissing, e.B)
		}
		permuted[i], permuted[j] = permuted[j], permuted[i]
	}
	if inPlace {
		return nil, nil
	}
	return permuted, nil
}

// IsIdentity reports whether applying p to original leaves it unchanged
// element-for-element; §4.6 requires the circuit assembler to reject an
// identity permutation for any non-head glink.
func (p Permutation) IsIdentity(original []node.Node) (bool, error) {
	permuted, err := p.Apply(original, false)
	if err != nil {
		return false, err
	}
	for i := range original {
		if original[i] != permuted[i] {
			return false, nil
		}
	}
	return true, nil
}

func formatted(src, dst node.Node) string {
	if dst == src {
		return fmt.Sprintf("\033[2m%s\033[0m", dst)
	}
	return dst.String()
}

// OneLine renders the result of applying p to original in one-line
// notation: the permuted sequence, space-separated, with fixed points
// dimmed when highlight is set. If original is nil, p.Keys() is used.
func (p Permutation) OneLine(original []node.Node, highlight bool, padding string) (string, error) {
	if original == nil {
		original = p.Keys()
	}
	permuted, err := p.Apply(original, false)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(original))
	for i := range original {
		if highlight {
			parts[i] = formatted(original[i], permuted[i])
		} else {
			parts[i] = permuted[i].String()
		}
	}
	return fmt.Sprintf("%s(%s)", padding, strings.Join(parts, " ")), nil
}

// TwoLine renders both the original and permuted sequences, one per line,
// aligned column-for-column; fixed points are dimmed on both lines when
// highlight is set.
func (p Permutation) TwoLine(original []node.Node, highlight bool, padding string) (string, error) {
	permuted, err := p.Apply(original, false)
	if err != nil {
		return "", err
	}

	top := make([]string, len(original))
	bottom := make([]string, len(original))
	for i := range original {
		if highlight {
			top[i] = formatted(permuted[i], original[i])
			bottom[i] = formatted(original[i], permuted[i])
		} else {
			top[i] = original[i].String()
			bottom[i] = permuted[i].String()
		}
	}
	return fmt.Sprintf("%s(%s)\n%s(%s)", padding, strings.Join(top, " "), padding, strings.Join(bottom, " ")), nil
}

// String implements fmt.Stringer in the teacher's multi-line Xxx(\n ...\n)
// style.
func (p Permutation) String() string {
	if len(p.edges) == 0 {
		return "Permutation()"
	}
	lines := make([]string, len(p.edges))
	for i, e := range p.edges {
		lines[i] = e.String()
	}
	return fmt.Sprintf("Permutation(\n  %s\n)", strings.Join(lines, "\n  "))
}
