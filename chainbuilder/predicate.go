package chainbuilder

import (
	"github.com/dnngky/quekno-rx/isomorph"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// isStrongGlink implements the strong-glink predicate (§4.3): candidate
// forms a strong glink with prev under perm iff (a) perm actually moves
// candidate (its image under perm differs from candidate itself), and
// (b) the union of prev and candidate's image embeds into ag.
func isStrongGlink(matcher isomorph.Matcher, ag, prev, candidate *qgraph.Graph, perm permutation.Permutation) bool {
	image := candidate
	for _, t := range perm.Items() {
		image = image.Permute(t.A, t.B, false)
	}
	if image.Equal(candidate) {
		return false
	}
	union := prev.Union(image)
	return matcher.Embeds(union, ag)
}
