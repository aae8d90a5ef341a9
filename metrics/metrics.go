package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/gate"
	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/router"
)

// Metrics is the output-triple's metrics mapping (§6).
type Metrics struct {
	OptType             string
	Cost                int
	ArchGraphName       string
	AverageSubgraphSize float64
	QBGRatioRealised    float64
	InputSize           int
	InputDepth          int
	RoutedGateCost      int
	RoutedDepthCost     int
	InitLayout          string
	SwapSequences       [][]string
	BuildWallTime       time.Duration
}

// Build computes the metrics mapping for one completed build: the chain
// that was grown, the circuit assembled from it, the router's routed
// result, and the wall time the whole build took.
func Build(cfg *config.Config, chain *glink.Chain, input *gate.Circuit, routed *router.Result, elapsed time.Duration) (*Metrics, error) {
	depthRegime := cfg.OptType.IsDepthRegime()

	glinks := chain.Glinks()
	edgeSum := 0
	for _, g := range glinks {
		edgeSum += g.Subgraph.NumEdges()
	}
	avgSize := float64(edgeSum) / float64(len(glinks))

	oneQ, twoQ := 0, 0
	for _, g := range input.Gates {
		switch g.Kind {
		case gate.OneQubit:
			oneQ++
		case gate.TwoQubit:
			twoQ++
		}
	}
	qbgRatio := 0.0
	if twoQ > 0 {
		qbgRatio = float64(oneQ) / float64(twoQ)
	}

	initLayout, err := chain.Head().Perm.OneLine(cfg.ArchGraph.Nodes(), false, "")
	if err != nil {
		return nil, fmt.Errorf("metrics: initial-layout notation: %w", err)
	}

	swaps := make([][]string, 0, len(chain.NonHeadGlinks()))
	for _, g := range chain.NonHeadGlinks() {
		seq := make([]string, 0, len(g.Perm.Items()))
		for _, e := range g.Perm.Items() {
			seq = append(seq, e.String())
		}
		swaps = append(swaps, seq)
	}

	return &Metrics{
		OptType:             cfg.OptType.String(),
		Cost:                chain.Cost(depthRegime),
		ArchGraphName:       cfg.ArchGraph.Name(),
		AverageSubgraphSize: avgSize,
		QBGRatioRealised:    qbgRatio,
		InputSize:           input.Size(),
		InputDepth:          input.Depth(),
		RoutedGateCost:      routed.Routed.Size() - input.Size(),
		RoutedDepthCost:     routed.Routed.Depth() - input.Depth(),
		InitLayout:          initLayout,
		SwapSequences:       swaps,
		BuildWallTime:       elapsed,
	}, nil
}

// Summary renders a single-line, human-readable rendition of the metrics,
// suitable for the CLI driver's plain-text progress output.
func (m *Metrics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "opt=%s cost=%d ag=%s avg_subgraph=%.2f qbg_ratio=%.2f ",
		m.OptType, m.Cost, m.ArchGraphName, m.AverageSubgraphSize, m.QBGRatioRealised)
	fmt.Fprintf(&b, "input(size=%d depth=%d) routed(gate_cost=%d depth_cost=%d) ",
		m.InputSize, m.InputDepth, m.RoutedGateCost, m.RoutedDepthCost)
	fmt.Fprintf(&b, "init=%s swaps=%d wall=%s", m.InitLayout, len(m.SwapSequences), m.BuildWallTime)
	return b.String()
}
