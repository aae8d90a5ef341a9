package glinksrc

import (
	"iter"
	"math/rand"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/permutation"
	"github.com/dnngky/quekno-rx/qgraph"
)

// Stream dispatches to the permutation producer for regime, honouring the
// gate-regime budget cap documented in §4.4: "the caller may cap each
// yielded permutation's length to target_cost − current_cost by requesting
// 1-swap-only generation when only one swap of budget remains". maxSwaps
// is ignored by the depth regime, whose cost is always 1 per glink
// regardless of permutation length.
//
// maxSwaps <= 0 means "no cap" (use the regime's natural maximum).
func Stream(regime config.OptType, ag *qgraph.Graph, maxSwaps int, bias float64, rng *rand.Rand) (iter.Seq[permutation.Permutation], error) {
	if ag.NumEdges() == 0 {
		return nil, ErrNoEdges
	}

	switch regime {
	case config.Opt1:
		return Opt1Stream(ag, rng), nil
	case config.Opt2:
		if maxSwaps == 1 {
			return Opt1Stream(ag, rng), nil
		}
		return Opt2Stream(ag, bias, rng), nil
	case config.Depth:
		return DepthStream(ag, rng), nil
	default:
		return Opt1Stream(ag, rng), nil
	}
}
