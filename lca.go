package algokit

import "fmt"

// LCA answers lowest-common-ancestor queries on a fixed rooted tree using
// binary lifting: for every vertex it precomputes the 2^k-th ancestor for
// each k, so a query lifts vertices in power-of-two jumps.
//
// Preprocessing is O(n log n) time and space; each Query is O(log n).
// The tree is immutable after construction. An LCA is safe for concurrent
// reads since queries never mutate it.
type LCA struct {
	n      int
	levels int // ancestor table rows per vertex: ceil(log2(n)), at least 1
	depth  []int
	// up is the binary-lifting table in flat row-major form:
	// up[v*levels + k] is the 2^k-th ancestor of v. The root's ancestor
	// chain points at the root itself, so lifting can never escape the tree.
	up []int
}

// NewLCA preprocesses the tree on vertices 0..n-1 described by edges,
// rooted at root. Edges are undirected; a valid tree has exactly n-1 of
// them connecting all vertices. It fails when root or an edge endpoint is
// out of range, when the edge count is wrong, or when the edges do not
// connect every vertex into a single tree.
func NewLCA(n int, edges [][2]int, root int) (*LCA, error) {
	if n < 1 {
		return nil, fmt.Errorf("algokit: LCA needs at least one vertex, got n=%d", n)
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("algokit: LCA root %d not within [0, %d]: %w", root, n-1, ErrOutOfRange)
	}
	if len(edges) != n-1 {
		return nil, fmt.Errorf("algokit: a tree on %d vertices has %d edges, got %d", n, n-1, len(edges))
	}

	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("algokit: LCA edge (%d, %d) not within [0, %d]: %w", u, v, n-1, ErrOutOfRange)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	levels := 1
	for 1<<levels < n {
		levels++
	}

	l := &LCA{
		n:      n,
		levels: levels,
		depth:  make([]int, n),
		up:     make([]int, n*levels),
	}

	// Depth-first walk with an explicit stack: the DFS depth is O(n) on a
	// path graph, too deep to trust to the call stack for large trees.
	// A vertex's row is filled when it is popped, so parent rows are
	// always complete before their children's.
	type frame struct{ v, parent int }
	visited := make([]bool, n)
	stack := []frame{{root, root}}
	seen := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.v] {
			return nil, fmt.Errorf("algokit: LCA edges do not form a tree (vertex %d reached twice)", f.v)
		}
		visited[f.v] = true
		seen++

		if f.v == root {
			l.depth[f.v] = 0
		} else {
			l.depth[f.v] = l.depth[f.parent] + 1
		}
		l.up[f.v*levels] = f.parent
		for k := 1; k < levels; k++ {
			half := l.up[f.v*levels+k-1]
			l.up[f.v*levels+k] = l.up[half*levels+k-1]
		}

		for _, w := range adj[f.v] {
			if w != f.parent {
				stack = append(stack, frame{w, f.v})
			}
		}
	}
	if seen != n {
		return nil, fmt.Errorf("algokit: LCA edges do not connect all vertices (%d of %d reachable from root %d)", seen, n, root)
	}
	return l, nil
}

// Query returns the lowest common ancestor of u and v. It fails with an
// error wrapping ErrOutOfRange when either vertex is outside [0, n-1].
func (l *LCA) Query(u, v int) (int, error) {
	if u < 0 || u >= l.n || v < 0 || v >= l.n {
		return 0, fmt.Errorf("algokit: LCA query (%d, %d) not within [0, %d]: %w", u, v, l.n-1, ErrOutOfRange)
	}

	// Keep u the deeper vertex.
	if l.depth[u] < l.depth[v] {
		u, v = v, u
	}

	// Lift u to v's depth in power-of-two jumps.
	for k := l.levels - 1; k >= 0; k-- {
		if l.depth[u]-(1<<k) >= l.depth[v] {
			u = l.up[u*l.levels+k]
		}
	}
	if u == v {
		// v was an ancestor of u.
		return u, nil
	}

	// Lift both to the highest ancestors that still differ; their common
	// parent is the LCA.
	for k := l.levels - 1; k >= 0; k-- {
		if l.up[u*l.levels+k] != l.up[v*l.levels+k] {
			u = l.up[u*l.levels+k]
			v = l.up[v*l.levels+k]
		}
	}
	return l.up[u*l.levels], nil
}

// Depth returns the distance in edges from the root to v. It fails with an
// error wrapping ErrOutOfRange when v is outside [0, n-1].
func (l *LCA) Depth(v int) (int, error) {
	if v < 0 || v >= l.n {
		return 0, fmt.Errorf("algokit: LCA depth of %d not within [0, %d]: %w", v, l.n-1, ErrOutOfRange)
	}
	return l.depth[v], nil
}
