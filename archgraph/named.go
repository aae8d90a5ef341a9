package archgraph

import (
	"fmt"
	"strings"

	"github.com/dnngky/quekno-rx/qgraph"
)

// Params bundles the parametric constructors' arguments so a single
// dispatch function can select an architecture graph by name, mirroring
// graph_from_name in the original implementation.
type Params struct {
	Rows     int
	Cols     int
	NumNodes int
}

// Named builds the architecture graph identified by name, case-insensitive.
// The fixed graphs (tokyo, rochester, sycamore54, sycamore) ignore params;
// the parametric families (grid, line, ring, star) read the relevant
// Params fields.
func Named(name string, params Params) (*qgraph.Graph, error) {
	switch strings.ToLower(name) {
	case "grid":
		return Grid(params.Rows, params.Cols), nil
	case "line":
		return Line(params.NumNodes), nil
	case "ring":
		return Ring(params.NumNodes), nil
	case "star":
		return Star(params.NumNodes), nil
	case "tokyo":
		return Tokyo(), nil
	case "rochester":
		return Rochester(), nil
	case "sycamore54":
		return Sycamore54(), nil
	case "sycamore":
		return Sycamore(), nil
	default:
		return nil, fmt.Errorf("archgraph: unknown graph name %q", name)
	}
}
