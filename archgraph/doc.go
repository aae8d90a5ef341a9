// Package archgraph builds architecture graphs (AG): the fixed,
// hardware-derived connectivity graphs (Tokyo, Rochester, Sycamore54,
// Sycamore) and the parametric families (Grid, Line, Ring, Star) a
// builder can target (§1: "an AG... and a parameter bundle").
//
// The fixed graphs' edge lists are transcribed from published hardware
// topologies; the parametric families follow the standard graph-theory
// constructions of the same name. Every constructor names its result
// (qgraph.Graph.Name) with the label the metrics output uses for
// "archgraph.name" (§6).
package archgraph
