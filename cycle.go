package algokit

// DFS vertex colors: white = unvisited, gray = on the current DFS path,
// black = fully explored.
const (
	colorWhite uint8 = iota
	colorGray
	colorBlack
)

// CycleFinder locates a single cycle in a directed or undirected graph on
// vertices 0..n-1 using a three-color depth-first search, in O(V + E).
//
// In undirected mode AddEdge records both arcs, and the search ignores the
// tree edge back to the immediate parent so a lone undirected edge is not
// reported as a two-vertex cycle.
//
// Vertex arguments must be in [0, n-1]; out-of-range values panic like any
// slice index. A CycleFinder is not safe for concurrent use.
type CycleFinder struct {
	n          int
	undirected bool
	adj        [][]int

	// Per-search state, reset by FindCycle.
	color      []uint8
	parent     []int
	cycleStart int
	cycleEnd   int
}

// NewCycleFinder creates a finder for a graph on n vertices. Set
// undirected for undirected graphs; edges then count in both directions.
func NewCycleFinder(n int, undirected bool) *CycleFinder {
	return &CycleFinder{
		n:          n,
		undirected: undirected,
		adj:        make([][]int, n),
	}
}

// AddEdge adds an edge from u to v. In undirected mode the reverse arc is
// added as well.
func (c *CycleFinder) AddEdge(u, v int) {
	c.adj[u] = append(c.adj[u], v)
	if c.undirected && u != v {
		c.adj[v] = append(c.adj[v], u)
	}
}

// FindCycle searches the whole graph and returns one cycle as a vertex
// sequence whose first and last elements are the same vertex, or nil when
// the graph is acyclic. It may be called again after further AddEdge
// calls; each call searches from scratch.
func (c *CycleFinder) FindCycle() []int {
	c.color = make([]uint8, c.n)
	c.parent = make([]int, c.n)
	for i := range c.parent {
		c.parent[i] = -1
	}
	c.cycleStart = -1

	for v := 0; v < c.n; v++ {
		if c.color[v] == colorWhite && c.dfs(v, -1) {
			break
		}
	}
	if c.cycleStart == -1 {
		return nil
	}

	// Walk parent pointers from cycleEnd back to cycleStart, then reverse
	// so the cycle reads in edge direction.
	cycle := []int{c.cycleStart}
	for v := c.cycleEnd; v != c.cycleStart; v = c.parent[v] {
		cycle = append(cycle, v)
	}
	cycle = append(cycle, c.cycleStart)
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}

// dfs explores from v with DFS-tree parent p, reporting whether a cycle
// was found. A back edge to a gray vertex closes a cycle.
func (c *CycleFinder) dfs(v, p int) bool {
	c.color[v] = colorGray
	c.parent[v] = p

	for _, u := range c.adj[v] {
		// In undirected graphs the arc back to the parent is the same
		// edge we arrived by, not a cycle.
		if c.undirected && u == p {
			continue
		}
		switch c.color[u] {
		case colorWhite:
			if c.dfs(u, v) {
				return true
			}
		case colorGray:
			c.cycleEnd = v
			c.cycleStart = u
			return true
		}
	}
	c.color[v] = colorBlack
	return false
}
