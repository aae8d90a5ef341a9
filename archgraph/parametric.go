package archgraph

import (
	"fmt"

	"github.com/dnngky/quekno-rx/qgraph"
)

// Grid returns the rows x cols grid-lattice graph: node (r, c) is labelled
// r*cols+c, with edges to its horizontal and vertical neighbours.
func Grid(rows, cols int) *qgraph.Graph {
	var edges [][2]int
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{idx(r, c), idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{idx(r, c), idx(r+1, c)})
			}
		}
	}
	return mustGraph(edges, fmt.Sprintf("grid(%d, %d)", rows, cols))
}

// Line returns the path graph on numNodes nodes: 0-1-2-...-(numNodes-1).
func Line(numNodes int) *qgraph.Graph {
	edges := make([][2]int, 0, numNodes-1)
	for i := 0; i+1 < numNodes; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return mustGraph(edges, fmt.Sprintf("line(%d)", numNodes))
}

// Ring returns the cycle graph on numNodes nodes: Line(numNodes) closed
// with an edge back from the last node to the first.
func Ring(numNodes int) *qgraph.Graph {
	edges := make([][2]int, 0, numNodes)
	for i := 0; i+1 < numNodes; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	edges = append(edges, [2]int{numNodes - 1, 0})
	return mustGraph(edges, fmt.Sprintf("ring(%d)", numNodes))
}

// Star returns the star graph on numNodes nodes: node 0 is the hub,
// connected to every other node.
func Star(numNodes int) *qgraph.Graph {
	edges := make([][2]int, 0, numNodes-1)
	for i := 1; i < numNodes; i++ {
		edges = append(edges, [2]int{0, i})
	}
	return mustGraph(edges, fmt.Sprintf("star(%d)", numNodes))
}
