package grid

// Reachable reports whether to can be reached from from by moving through
// open orthogonal neighbors. Blocked or out-of-bounds endpoints are never
// reachable. Implemented as a plain flood fill, independent of any
// priority-driven search, so it can serve as an oracle for them.
//
// Time:   O(N²·4).
// Memory: O(N²) for seen flags and the queue.
func (g *Grid) Reachable(from, to Coordinate) bool {
	if g.Blocked(from) || g.Blocked(to) {
		return false
	}
	if from == to {
		return true
	}

	seen := make([]bool, g.size*g.size)
	queue := []Coordinate{from}
	seen[g.index(from)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if v == to {
				return true
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
