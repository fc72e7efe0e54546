// Package algokit provides classical algorithmic primitives: a generic
// range-query tree (segment tree with point updates), a disjoint-set
// union, a binary-lifting lowest-common-ancestor structure, and a graph
// cycle finder. Each structure is independent; none shares state with the
// others.
//
// The centerpiece is RangeTree, parameterized over an associative merge
// operation and its identity element:
//
//	tree := algokit.New([]int{1, 2, 3, 4, 5}, func(a, b int) int { return a + b }, 0)
//	sum, err := tree.Query(1, 3) // 9
//	err = tree.Update(2, 10)
//	sum, err = tree.Query(1, 3) // 16
//
// Build is O(n); Query and Update are O(log n). Non-commutative merges
// (string concatenation, matrix product) are supported: the left part of a
// range is always combined before the right.
//
// Index arguments to RangeTree and LCA queries are validated and fail with
// errors wrapping ErrOutOfRange:
//
//	if _, err := tree.Query(2, 1); errors.Is(err, algokit.ErrOutOfRange) {
//		// empty or inverted range
//	}
//
// The cycle finder works on its own adjacency lists or, through
// DirectedCycle and UndirectedCycle, on any gonum.org/v1/gonum/graph
// graph.
//
// None of the structures is safe for concurrent mutation; guard shared
// instances with a lock.
package algokit
