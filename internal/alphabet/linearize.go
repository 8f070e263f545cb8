package alphabet

import "container/heap"

// Linearize runs Kahn's algorithm over the assembled graph and returns
// the inferred character order as a string containing every distinct
// input symbol exactly once.
//
// State machine:
//   - Initial: every symbol with in-degree zero is available.
//   - Step: remove the minimum available symbol (code point order),
//     append it to the output, decrement the in-degree of each of its
//     successors; a successor reaching zero becomes newly available.
//   - Terminal success: output length equals the distinct symbol count.
//   - Terminal failure: the frontier empties with symbols remaining -
//     the leftovers are involved in a cycle, directly or transitively.
//
// Linearize consumes a copy of the in-degree table, so it may be called
// any number of times on the same Analysis with identical results.
func (a *Analysis) Linearize() (string, error) {
	indegree := a.graph.indegreeCopy()

	f := &frontier{}
	for _, r := range a.symbols {
		if indegree[r] == 0 {
			*f = append(*f, r)
		}
	}
	heap.Init(f)

	out := make([]rune, 0, len(a.symbols))
	for f.Len() > 0 {
		r := heap.Pop(f).(rune)
		out = append(out, r)

		for _, succ := range a.graph.successors(r) {
			indegree[succ]--
			if indegree[succ] == 0 {
				heap.Push(f, succ)
			}
		}
	}

	if len(out) != len(a.symbols) {
		// Whatever was not placed still has unresolved predecessors.
		remaining := make(map[rune]bool, len(a.symbols)-len(out))
		placed := make(map[rune]bool, len(out))
		for _, r := range out {
			placed[r] = true
		}
		for _, r := range a.symbols {
			if !placed[r] {
				remaining[r] = true
			}
		}
		return "", newCycleError(describeCycle(a.graph, remaining))
	}

	return string(out), nil
}
