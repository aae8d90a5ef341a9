package config

import "errors"

// Sentinel errors for config resolution and INI loading. Callers should
// branch with errors.Is, never string comparison.
var (
	// ErrMissingOptType indicates New was called without WithOptType.
	ErrMissingOptType = errors.New("config: opt_type is required")

	// ErrMissingArchGraph indicates New was called without WithArchGraph.
	ErrMissingArchGraph = errors.New("config: archgraph is required")

	// ErrNegativeTargetCost indicates WithTargetCost received a negative
	// value; target_cost must be a non-negative integer (§6).
	ErrNegativeTargetCost = errors.New("config: target_cost must be non-negative")

	// ErrNonPositiveSubgraphSize indicates a subgraph_size <= 0.
	ErrNonPositiveSubgraphSize = errors.New("config: subgraph_size must be positive")

	// ErrNonPositiveQBGRatio indicates a qbg_ratio <= 0.
	ErrNonPositiveQBGRatio = errors.New("config: qbg_ratio must be positive")

	// ErrIniLoad indicates the runtime-constants INI file could not be read
	// or mapped.
	ErrIniLoad = errors.New("config: failed to load runtime constants")
)
