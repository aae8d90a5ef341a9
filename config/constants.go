package config

// RuntimeConstants holds the tunables of §6's runtime constants table.
// config/ini.go reads each key explicitly via Key(...).MustX(default)
// rather than gopkg.in/ini.v1's MapTo, so these fields carry no struct
// tags — the key names below are the authoritative mapping.
type RuntimeConstants struct {
	// SubgraphSizeStd is the Gaussian standard deviation used when
	// sampling a candidate subgraph's edge count around the configured
	// mean (§4.5 step 1). INI key: subgraph_size_std.
	SubgraphSizeStd float64

	// RandEdgesVar is the variance term in the back-two-qubit-gate count
	// formula (§4.6 step 3). INI key: rand_edges_var.
	RandEdgesVar float64

	// ConsecSwapsBias biases opt2's coin flip toward (or away from)
	// pairing a second consecutive swap (§4.4). INI key: consec_swaps_bias.
	ConsecSwapsBias float64

	// GlinkSearchPatience is the number of permutations drawn per
	// candidate subgraph before ChainBuilder gives up and redraws the
	// subgraph (§4.5 step 3a). INI key: glink_search_patience.
	GlinkSearchPatience int

	// VF2CallLimit bounds the isomorphism matcher's search budget (§4.3,
	// §5). INI key: vf2_call_limit.
	VF2CallLimit int
}

// DefaultRuntimeConstants returns the constants table's documented
// defaults (§6).
func DefaultRuntimeConstants() RuntimeConstants {
	return RuntimeConstants{
		SubgraphSizeStd:     10,
		RandEdgesVar:        0.05,
		ConsecSwapsBias:     0.0,
		GlinkSearchPatience: 10,
		VF2CallLimit:        10_000,
	}
}
