package algokit

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is reported when an index argument falls outside a
// structure's valid domain. All range violations wrap this sentinel, so
// callers can test with errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// MergeFunc combines two aggregate values into one. It must be associative:
// merge(merge(a, b), c) == merge(a, merge(b, c)). Commutativity is not
// required; RangeTree always combines the left portion of a range before
// the right one.
type MergeFunc[T any] func(a, b T) T

// RangeTree answers aggregate queries over contiguous ranges of a sequence
// and supports single-position value replacement, both in O(log n). It is a
// segment tree with point updates: the sequence is covered by an implicit
// complete binary tree whose every node stores the merge of its half of the
// sequence.
//
// The merge operation and its identity element are fixed at construction:
//
//	sum := algokit.New([]int{1, 2, 3, 4, 5}, func(a, b int) int { return a + b }, 0)
//	total, err := sum.Query(1, 3) // 2+3+4 = 9
//	err = sum.Update(2, 10)       // sequence is now 1, 2, 10, 4, 5
//
// Any associative operation works: min (identity math.MaxInt), max, gcd,
// bitwise xor, string concatenation, matrix product. The identity must
// satisfy merge(identity, x) == merge(x, identity) == x; it is the
// contribution of an empty sub-range during query decomposition.
//
// A RangeTree is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally; an Update interleaved with
// any other operation can observe a tree whose internal aggregates are
// stale.
type RangeTree[T any] struct {
	n        int
	merge    MergeFunc[T]
	identity T
	// nodes is the implicit tree: root at index 1, node v has children at
	// 2v and 2v+1. Length 4n is enough for any recursive split pattern
	// whether or not n is a power of two.
	nodes []T
}

// New builds a RangeTree over values in O(n). The values slice is read but
// not retained; later mutation of it does not affect the tree.
//
// An empty values slice is valid and produces a tree whose every Query and
// Update fails with ErrOutOfRange (the index domain is empty).
func New[T any](values []T, merge MergeFunc[T], identity T) *RangeTree[T] {
	n := len(values)
	t := &RangeTree[T]{
		n:        n,
		merge:    merge,
		identity: identity,
		nodes:    make([]T, 4*n),
	}
	if n > 0 {
		t.build(values, 1, 0, n-1)
	}
	return t
}

// Len returns the number of elements in the underlying sequence.
func (t *RangeTree[T]) Len() int {
	return t.n
}

// Query returns the merge of the sequence values at positions l through r
// inclusive, combined in left-to-right order. It fails with an error
// wrapping ErrOutOfRange when l > r or either index is outside [0, n-1];
// a failed call leaves the tree untouched.
func (t *RangeTree[T]) Query(l, r int) (T, error) {
	if l < 0 || r >= t.n || l > r {
		var zero T
		return zero, fmt.Errorf("algokit: query range [%d, %d] not within [0, %d]: %w", l, r, t.n-1, ErrOutOfRange)
	}
	return t.queryRange(1, 0, t.n-1, l, r), nil
}

// Update replaces the value at position pos and recomputes the O(log n)
// ancestor aggregates on the root-to-leaf path. It fails with an error
// wrapping ErrOutOfRange when pos is outside [0, n-1]; a failed call
// leaves the tree untouched.
func (t *RangeTree[T]) Update(pos int, value T) error {
	if pos < 0 || pos >= t.n {
		return fmt.Errorf("algokit: update position %d not within [0, %d]: %w", pos, t.n-1, ErrOutOfRange)
	}
	t.updatePos(1, 0, t.n-1, pos, value)
	return nil
}

// build fills the subtree rooted at node v, which covers values[tl:tr+1],
// children before parent.
func (t *RangeTree[T]) build(values []T, v, tl, tr int) {
	if tl == tr {
		t.nodes[v] = values[tl]
		return
	}
	tm := tl + (tr-tl)/2 // midpoint without overflow
	t.build(values, 2*v, tl, tm)
	t.build(values, 2*v+1, tm+1, tr)
	t.nodes[v] = t.merge(t.nodes[2*v], t.nodes[2*v+1])
}

// queryRange aggregates [l, r] within node v covering [tl, tr].
// An empty sub-range after clamping contributes the identity, which lets
// the merge below apply unconditionally to both halves.
func (t *RangeTree[T]) queryRange(v, tl, tr, l, r int) T {
	if l > r {
		return t.identity
	}
	if l == tl && r == tr {
		return t.nodes[v]
	}
	tm := tl + (tr-tl)/2
	left := t.queryRange(2*v, tl, tm, l, min(r, tm))
	right := t.queryRange(2*v+1, tm+1, tr, max(l, tm+1), r)
	// Left before right: required for non-commutative merges.
	return t.merge(left, right)
}

// updatePos descends from node v covering [tl, tr] to the leaf for pos,
// then recomputes each visited ancestor on the way back up.
func (t *RangeTree[T]) updatePos(v, tl, tr, pos int, value T) {
	if tl == tr {
		t.nodes[v] = value
		return
	}
	tm := tl + (tr-tl)/2
	if pos <= tm {
		t.updatePos(2*v, tl, tm, pos, value)
	} else {
		t.updatePos(2*v+1, tm+1, tr, pos, value)
	}
	t.nodes[v] = t.merge(t.nodes[2*v], t.nodes[2*v+1])
}
