package archgraph

import "github.com/dnngky/quekno-rx/qgraph"

func mustGraph(edges [][2]int, name string) *qgraph.Graph {
	g, err := qgraph.FromEdges(edges)
	if err != nil {
		panic("archgraph: " + name + ": " + err.Error())
	}
	g.SetName(name)
	return g
}

// Tokyo returns the IBM Q Tokyo connectivity graph (20 qubits).
func Tokyo() *qgraph.Graph {
	return mustGraph([][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4},
		{0, 5}, {1, 6}, {1, 7}, {2, 6}, {2, 7}, {3, 8}, {3, 9}, {4, 8}, {4, 9},
		{5, 6}, {6, 7}, {7, 8}, {8, 9},
		{5, 10}, {5, 11}, {6, 10}, {6, 11}, {7, 12}, {7, 13}, {8, 12}, {8, 13}, {9, 14},
		{10, 11}, {11, 12}, {12, 13}, {13, 14},
		{10, 15}, {11, 16}, {11, 17}, {12, 16}, {12, 17}, {13, 18}, {13, 19}, {14, 18}, {14, 19},
		{15, 16}, {16, 17}, {17, 18}, {18, 19},
	}, "tokyo")
}

// Rochester returns the IBM Q Rochester connectivity graph (53 qubits).
func Rochester() *qgraph.Graph {
	return mustGraph([][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4},
		{0, 5}, {4, 6},
		{5, 9}, {6, 13},
		{7, 8}, {8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15},
		{7, 16}, {11, 17}, {15, 18},
		{16, 19}, {17, 23}, {18, 27},
		{19, 20}, {20, 21}, {21, 22}, {22, 23}, {23, 24}, {24, 25}, {25, 26}, {26, 27},
		{21, 28}, {25, 29},
		{28, 32}, {29, 36},
		{30, 31}, {31, 32}, {32, 33}, {33, 34}, {34, 35}, {35, 36}, {36, 37}, {37, 38},
		{30, 39}, {34, 40}, {38, 41},
		{39, 42}, {40, 46}, {41, 50},
		{42, 43}, {43, 44}, {44, 45}, {45, 46}, {46, 47}, {47, 48}, {48, 49}, {49, 50},
		{44, 51}, {48, 52},
	}, "rochester")
}

// sycamore54Edges returns Google Sycamore's 54-qubit connectivity edge
// list (shared by Sycamore54 and Sycamore, the latter dropping qubit 3).
func sycamore54Edges() [][2]int {
	return [][2]int{
		{0, 6}, {1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8}, {3, 9}, {4, 9}, {4, 10}, {5, 10}, {5, 11},
		{6, 12}, {6, 13}, {7, 13}, {7, 14}, {8, 14}, {8, 15}, {9, 15}, {9, 16}, {10, 16}, {10, 17}, {11, 17},
		{12, 18}, {13, 18}, {13, 19}, {14, 19}, {14, 20}, {15, 20}, {15, 21}, {16, 21}, {16, 22}, {17, 22}, {17, 23},
		{18, 24}, {18, 25}, {19, 25}, {19, 26}, {20, 26}, {20, 27}, {21, 27}, {21, 28}, {22, 28}, {22, 29}, {23, 29},
		{24, 30}, {25, 30}, {25, 31}, {26, 31}, {26, 32}, {27, 32}, {27, 33}, {28, 33}, {28, 34}, {29, 34}, {29, 35},
		{30, 36}, {30, 37}, {31, 37}, {31, 38}, {32, 38}, {32, 39}, {33, 39}, {33, 40}, {34, 40}, {34, 41}, {35, 41},
		{36, 42}, {37, 42}, {37, 43}, {38, 44}, {39, 44}, {39, 45}, {40, 45}, {40, 46}, {41, 46}, {41, 47},
		{42, 48}, {42, 49}, {43, 49}, {43, 50}, {44, 50}, {44, 51}, {45, 51}, {45, 52}, {46, 52}, {46, 53}, {47, 53},
	}
}

// Sycamore54 returns Google's Sycamore connectivity graph (54 qubits).
func Sycamore54() *qgraph.Graph {
	return mustGraph(sycamore54Edges(), "sycamore54")
}

// Sycamore returns Google's Sycamore connectivity graph with qubit 3
// excluded (53 qubits) — the variant used in practice once that qubit
// was identified as faulty. Excluding it re-triggers FromEdges's
// consecutive relabelling, exactly as dropping a node and re-extracting
// edges did in the original implementation.
func Sycamore() *qgraph.Graph {
	var edges [][2]int
	for _, e := range sycamore54Edges() {
		if e[0] == 3 || e[1] == 3 {
			continue
		}
		edges = append(edges, e)
	}
	return mustGraph(edges, "sycamore")
}
