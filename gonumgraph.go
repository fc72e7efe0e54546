package algokit

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// DirectedCycle runs the cycle finder over a gonum directed graph and
// returns one cycle as node IDs, first and last entries equal, or nil when
// g is acyclic. Node IDs may be arbitrary int64 values; they are reindexed
// densely before the search.
func DirectedCycle(g graph.Directed) []int64 {
	ids, index := denseNodeIndex(g)
	c := NewCycleFinder(len(ids), false)
	for i, id := range ids {
		for it := g.From(id); it.Next(); {
			c.AddEdge(i, index[it.Node().ID()])
		}
	}
	return idCycle(c.FindCycle(), ids)
}

// UndirectedCycle runs the cycle finder over a gonum undirected graph and
// returns one cycle as node IDs, or nil when g is acyclic. A lone edge is
// not a cycle.
func UndirectedCycle(g graph.Undirected) []int64 {
	ids, index := denseNodeIndex(g)
	c := NewCycleFinder(len(ids), true)
	for i, id := range ids {
		for it := g.From(id); it.Next(); {
			// From yields each undirected edge at both endpoints; add it
			// once and let the finder record the reverse arc.
			if j := index[it.Node().ID()]; i < j {
				c.AddEdge(i, j)
			}
		}
	}
	return idCycle(c.FindCycle(), ids)
}

// denseNodeIndex collects g's node IDs in ascending order and returns them
// with the inverse mapping from ID to dense index.
func denseNodeIndex(g graph.Graph) ([]int64, map[int64]int) {
	var ids []int64
	for it := g.Nodes(); it.Next(); {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	return ids, index
}

// idCycle maps a dense-index cycle back to gonum node IDs.
func idCycle(cycle []int, ids []int64) []int64 {
	if cycle == nil {
		return nil
	}
	out := make([]int64, len(cycle))
	for i, v := range cycle {
		out[i] = ids[v]
	}
	return out
}
