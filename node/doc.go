// Package node defines the Node and Edge value types shared by every other
// package in this module.
//
// A Node wraps an integer label. Per the original Python implementation's
// Node/Edge wrapper classes, a "null" node/edge sentinel is preserved here as
// NullNode/NullEdge so that algorithms (notably the depth-regime permutation
// source, see glinksrc) can use a null edge as an early-termination signal
// without resorting to a pointer/nil-able type. In a statically typed
// language the wrapper's job of keeping raw integers from leaking in where a
// Node is expected is done by the type system instead: Node is a distinct
// defined type over int, so passing a bare int where a Node is expected is a
// compile error, not a runtime one.
package node
