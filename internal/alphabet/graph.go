package alphabet

import "sort"

// Edge is a directed precedence constraint: From precedes To in the
// unknown alphabet. Edges are derived from adjacent word pairs, never
// supplied directly.
type Edge struct {
	From rune `json:"from"`
	To   rune `json:"to"`
}

// constraintGraph owns the symbol nodes, the adjacency sets, and the
// in-degree table. Every collected symbol is a node even with no edges -
// isolated symbols still appear in the final order.
//
// The graph is frozen once Analyze returns. Linearization mutates only a
// copy of the in-degree table (see indegreeCopy), so the invariants here
// can be audited independently of the linearizer's state machine.
type constraintGraph struct {
	adj      map[rune]map[rune]bool
	indegree map[rune]int
}

// newConstraintGraph creates a graph with a node per collected symbol
// and no edges.
func newConstraintGraph(symbols map[rune]bool) *constraintGraph {
	g := &constraintGraph{
		adj:      make(map[rune]map[rune]bool, len(symbols)),
		indegree: make(map[rune]int, len(symbols)),
	}
	for r := range symbols {
		g.adj[r] = make(map[rune]bool)
		g.indegree[r] = 0
	}
	return g
}

// addEdge inserts the edge from -> to. Insertion is idempotent: adding
// an edge already present does not double-increment the in-degree.
// Returns true if the edge was newly inserted.
func (g *constraintGraph) addEdge(from, to rune) bool {
	if g.adj[from][to] {
		return false
	}
	g.adj[from][to] = true
	g.indegree[to]++
	return true
}

// successors returns the adjacency set of a symbol in code point order.
// Deterministic iteration keeps diagnostic traces reproducible.
func (g *constraintGraph) successors(from rune) []rune {
	out := make([]rune, 0, len(g.adj[from]))
	for to := range g.adj[from] {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// indegreeCopy returns a fresh copy of the in-degree table for the
// linearizer to consume. The graph's own table is never mutated after
// assembly.
func (g *constraintGraph) indegreeCopy() map[rune]int {
	out := make(map[rune]int, len(g.indegree))
	for r, d := range g.indegree {
		out[r] = d
	}
	return out
}

// edgeList returns all edges sorted by (From, To).
func (g *constraintGraph) edgeList() []Edge {
	var edges []Edge
	for from, tos := range g.adj {
		for to := range tos {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
