package alphabet

// frontier is a binary min-heap over the symbols whose predecessors have
// all been resolved (in-degree zero). Pop always yields the smallest
// code point, which fixes the linearizer's tie-break policy: identical
// input produces identical output.
//
// Implements container/heap.Interface. Any other priority structure that
// always yields the least available symbol under the same total order
// would behave identically.
type frontier []rune

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i] < f[j] }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(rune)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	r := old[n-1]
	*f = old[:n-1]
	return r
}
