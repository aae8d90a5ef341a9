package qgraph

import "errors"

// Sentinel errors for qgraph operations. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrParallelEdge indicates the input edge list to FromEdges (or an
	// AddEdge call on a graph that forbids it) contains a duplicate edge.
	ErrParallelEdge = errors.New("qgraph: parallel edge not allowed")

	// ErrSelfLoop indicates an edge whose two endpoints are equal.
	ErrSelfLoop = errors.New("qgraph: self-loop not allowed")

	// ErrSampleSizeInvalid indicates a sample size parameter is out of the
	// domain the calling method documents (e.g. RandomSubgraph(m) with
	// m < 1 or m > NumEdges()).
	ErrSampleSizeInvalid = errors.New("qgraph: invalid sample size")

	// ErrInsufficientPopulation indicates include_all was requested with a
	// sample size too small to guarantee every element appears at least
	// once.
	ErrInsufficientPopulation = errors.New("qgraph: sample size too small to include every element")

	// ErrNodeNotFound indicates an operation referenced a node absent from
	// the graph.
	ErrNodeNotFound = errors.New("qgraph: node not found")
)
