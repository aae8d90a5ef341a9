package permutation_test

import (
	"math/rand"
	"sort"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/dnngky/quekno-rx/node"
	"github.com/dnngky/quekno-rx/permutation"
)

// FuzzRandomIsBijection checks that Random's map-mode permutation, applied
// to the sequence it was built from, always yields a reordering of the same
// multiset of nodes — it never drops or duplicates a node.
func FuzzRandomIsBijection(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8}, int64(1))
	f.Fuzz(func(t *testing.T, data []byte, seed int64) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		count, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		n := int(count)%32 + 1

		original := make([]node.Node, n)
		for i := range original {
			original[i] = node.Node(i)
		}

		rng := rand.New(rand.NewSource(seed))
		p := permutation.Random(original, rng)

		permuted, err := p.Apply(original, false)
		if err != nil {
			t.Fatalf("Apply() = %v, want nil error", err)
		}
		if len(permuted) != len(original) {
			t.Fatalf("Apply() changed length: got %d, want %d", len(permuted), len(original))
		}

		wantSorted := append([]node.Node(nil), original...)
		gotSorted := append([]node.Node(nil), permuted...)
		sort.Slice(wantSorted, func(i, j int) bool { return wantSorted[i].Less(wantSorted[j]) })
		sort.Slice(gotSorted, func(i, j int) bool { return gotSorted[i].Less(gotSorted[j]) })
		for i := range wantSorted {
			if wantSorted[i] != gotSorted[i] {
				t.Fatalf("Apply(Random()) did not preserve the node multiset: got %v, want %v", gotSorted, wantSorted)
			}
		}
	})
}
