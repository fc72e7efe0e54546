package algokit

// DisjointSet maintains a partition of the elements {0, ..., n-1} into
// disjoint sets, supporting near-constant-time set merging and
// representative lookup via path compression and union by size. Any mix of
// m operations over n elements costs O(m α(n)) total, with α the inverse
// Ackermann function (below 5 for any practical n).
//
// Element arguments must be in [0, n-1]; out-of-range values panic like
// any slice index. A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSet creates a partition of n elements into n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i // each element starts as its own root
		size[i] = 1
	}
	return &DisjointSet{parent: parent, size: size, count: n}
}

// Find returns the representative of the set containing x, with path
// compression.
func (d *DisjointSet) Find(x int) int {
	// Walk to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. It reports whether a merge happened; false means x and
// y were already in the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}

	// Attach smaller to larger.
	if d.size[rootX] < d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	d.count--
	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}

// Count returns the current number of disjoint sets.
func (d *DisjointSet) Count() int {
	return d.count
}
