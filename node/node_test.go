package node_test

import (
	"testing"

	"github.com/dnngky/quekno-rx/node"
)

func TestNullNodeNeverEqual(t *testing.T) {
	if node.NullNode.Equal(node.NullNode) {
		t.Fatalf("NullNode.Equal(NullNode) = true, want false")
	}
	if node.Node(3).Equal(node.NullNode) {
		t.Fatalf("non-null.Equal(NullNode) = true, want false")
	}
}

func TestNodeEqual(t *testing.T) {
	a, b := node.Node(3), node.Node(3)
	if !a.Equal(b) {
		t.Fatalf("Node(3).Equal(Node(3)) = false, want true")
	}
	if a.Equal(node.Node(4)) {
		t.Fatalf("Node(3).Equal(Node(4)) = true, want false")
	}
}

func TestNodeLess(t *testing.T) {
	if !node.Node(1).Less(node.Node(2)) {
		t.Fatalf("Node(1).Less(Node(2)) = false, want true")
	}
	if node.Node(2).Less(node.Node(1)) {
		t.Fatalf("Node(2).Less(Node(1)) = true, want false")
	}
}

func TestNodeString(t *testing.T) {
	if got, want := node.Node(7).String(), "7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := node.NullNode.String(), "NULL-NODE"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
