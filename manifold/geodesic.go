package manifold

import (
	"container/heap"
	"math"
)

// edge is one weighted arc of the neighborhood graph: a neighbor index and
// the Euclidean distance to it.
type edge struct {
	to int
	w  float64
}

// nodeItem represents a vertex and its current distance from the source,
// stored in the priority queue to order vertices by increasing distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. We use the
// lazy-decrease-key approach: when a shorter distance to an existing vertex
// is found we push a fresh entry; the stale one is skipped when popped
// (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// shortestFrom runs Dijkstra over the adjacency list adj starting at src and
// returns the distance to every vertex (math.Inf(1) where unreachable).
// Edge weights are Euclidean distances, hence always non-negative.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func shortestFrom(src int, adj [][]edge) []float64 {
	// 1) dist[v] = +∞ for all vertices, 0 for the source.
	dist := make([]float64, len(adj))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	visited := make([]bool, len(adj))

	// 2) Seed the heap with the source at distance zero.
	pq := make(nodePQ, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	// 3) Main loop: extract the closest unfinalized vertex and relax its
	//    outgoing edges.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		for _, e := range adj[u] {
			next := dist[u] + e.w
			// Strict improvement only, to avoid duplicate pushes on ties.
			if next >= dist[e.to] {
				continue
			}
			dist[e.to] = next
			heap.Push(&pq, &nodeItem{id: e.to, dist: next})
		}
	}

	return dist
}
