package alphabet

// describeCycle reconstructs one representative cycle among the symbols
// the linearizer could not place, for diagnostic purposes only. The
// pass/fail contract does not depend on it: a cyclic input fails with
// ErrCodeCyclicConstraint whether or not a path is recovered.
//
// The algorithm:
//  1. Restrict the graph to the unplaced symbols.
//  2. Find strongly connected components with Tarjan's algorithm.
//  3. Walk edges inside the first multi-node SCC back to its start.
func describeCycle(g *constraintGraph, remaining map[rune]bool) []string {
	sccs := tarjanSCC(g, remaining)

	for _, scc := range sccs {
		if len(scc) > 1 {
			return cyclePath(g, scc)
		}
	}
	return nil
}

// tarjanSCC finds strongly connected components of the graph restricted
// to the given node set. Nodes are visited in code point order so the
// reported component is deterministic.
func tarjanSCC(g *constraintGraph, nodes map[rune]bool) [][]rune {
	var (
		index   = 0
		stack   []rune
		indices = make(map[rune]int, len(nodes))
		lowlink = make(map[rune]int, len(nodes))
		onStack = make(map[rune]bool, len(nodes))
		sccs    [][]rune
	)

	var strongConnect func(rune)
	strongConnect = func(v rune) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.successors(v) {
			if !nodes[w] {
				continue
			}
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		// v roots an SCC: pop the stack down to v.
		if lowlink[v] == indices[v] {
			var scc []rune
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, v := range sortedSymbols(nodes) {
		if _, visited := indices[v]; !visited {
			strongConnect(v)
		}
	}

	return sccs
}

// cyclePath walks edges within an SCC from its smallest member back to
// itself, e.g. ["a", "b", "c", "a"]. Starting at the smallest code
// point keeps the reported path independent of DFS visit order.
func cyclePath(g *constraintGraph, scc []rune) []string {
	members := make(map[rune]bool, len(scc))
	for _, r := range scc {
		members[r] = true
	}

	start := sortedSymbols(members)[0]
	current := start
	path := []string{string(current)}
	visited := make(map[rune]bool, len(scc))

	for {
		visited[current] = true

		var next rune
		found := false
		for _, neighbor := range g.successors(current) {
			if members[neighbor] && (!visited[neighbor] || neighbor == start) {
				next = neighbor
				found = true
				break
			}
		}
		if !found {
			break
		}

		path = append(path, string(next))
		if next == start {
			break
		}
		current = next
	}

	return path
}
