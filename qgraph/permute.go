package qgraph

import "github.com/dnngky/quekno-rx/node"

// Permute exchanges the neighbourhoods of src and dst (§3's node-pair
// permutation), returning a graph isomorphic to g except that src and dst
// have swapped neighbours. The edge {src, dst} itself, if present, remains
// present.
//
// If exactly one of src, dst is absent from g, it is temporarily added (so
// it acts as a node with an empty neighbourhood), the exchange performed,
// and then removed again. If neither is present, g is returned unchanged.
//
// If inPlace is true, the mutation happens on g directly and the return
// value is nil.
func (g *Graph) Permute(src, dst node.Node, inPlace bool) *Graph {
	if !g.HasNode(src) && !g.HasNode(dst) {
		if inPlace {
			return nil
		}
		return g.Copy()
	}

	this := g
	if !inPlace {
		this = g.Copy()
	}

	srcExternal := !this.HasNode(src)
	if srcExternal {
		this.AddNode(src)
	}
	dstExternal := !this.HasNode(dst)
	if dstExternal {
		this.AddNode(dst)
	}

	srcNeighbours := removeNode(this.Neighbours(src), dst)
	dstNeighbours := removeNode(this.Neighbours(dst), src)

	for _, n := range srcNeighbours {
		this.RemoveEdge(node.NewEdge(src, n))
	}
	for _, n := range dstNeighbours {
		this.RemoveEdge(node.NewEdge(dst, n))
	}
	for _, n := range srcNeighbours {
		_ = this.AddEdge(node.NewEdge(dst, n))
	}
	for _, n := range dstNeighbours {
		_ = this.AddEdge(node.NewEdge(src, n))
	}

	if srcExternal {
		this.RemoveNode(src)
	}
	if dstExternal {
		this.RemoveNode(dst)
	}

	if inPlace {
		return nil
	}
	return this
}

func removeNode(ns []node.Node, v node.Node) []node.Node {
	out := make([]node.Node, 0, len(ns))
	for _, n := range ns {
		if n != v {
			out = append(out, n)
		}
	}
	return out
}
