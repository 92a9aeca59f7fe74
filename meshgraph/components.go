package meshgraph

// Components partitions the vertices into connected components ("islands").
// Each component lists its vertices in BFS order from its lowest vertex;
// components are ordered by their lowest vertex. Isolated vertices form
// singleton components.
//
// Vertices in different components are mutually unreachable, so their
// distance entries are +Inf.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.adj))
	var comps [][]int

	for v0 := range g.adj {
		if seen[v0] {
			continue
		}
		// BFS to collect component
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range g.adj[queue[qi]] {
				if !seen[nb.Vertex] {
					seen[nb.Vertex] = true
					queue = append(queue, nb.Vertex)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf labels every vertex with the index of its component in
// Components order.
func (g *Graph) ComponentOf() []int {
	label := make([]int, len(g.adj))
	for c, comp := range g.Components() {
		for _, v := range comp {
			label[v] = c
		}
	}

	return label
}
