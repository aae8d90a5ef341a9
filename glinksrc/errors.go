package glinksrc

import "errors"

// ErrNoEdges indicates Stream was called against an architecture graph
// with no edges, from which no swap can ever be drawn.
var ErrNoEdges = errors.New("glinksrc: archgraph has no edges")
