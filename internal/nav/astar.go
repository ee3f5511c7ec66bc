package nav

import "math"

type searchNode struct {
	id int
	f  float64
	g  float64
}

type nodeHeap struct {
	nodes []searchNode
}

func (h *nodeHeap) reset() {
	h.nodes = h.nodes[:0]
}

func (h *nodeHeap) push(n searchNode) {
	h.nodes = append(h.nodes, n)
	i := len(h.nodes) - 1
	for i > 0 {
		p := (i - 1) / 2
		if h.nodes[p].f <= n.f {
			break
		}
		h.nodes[i] = h.nodes[p]
		i = p
	}
	h.nodes[i] = n
}

func (h *nodeHeap) pop() (searchNode, bool) {
	if len(h.nodes) == 0 {
		return searchNode{}, false
	}
	min := h.nodes[0]
	last := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	if len(h.nodes) == 0 {
		return min, true
	}
	i := 0
	for {
		left := 2*i + 1
		right := left + 1
		if left >= len(h.nodes) {
			break
		}
		smallest := left
		if right < len(h.nodes) && h.nodes[right].f < h.nodes[left].f {
			smallest = right
		}
		if h.nodes[smallest].f >= last.f {
			break
		}
		h.nodes[i] = h.nodes[smallest]
		i = smallest
	}
	h.nodes[i] = last
	return min, true
}

// pathScratch holds reusable A* buffers so repeated path queries do not
// allocate. One instance per zone graph; queries are synchronous and
// single-threaded (see Mesh doc).
type pathScratch struct {
	gScore   []float64
	cameFrom []int
	closed   []bool
	heap     nodeHeap
}

func (ps *pathScratch) prepare(size int) {
	if cap(ps.gScore) < size {
		ps.gScore = make([]float64, size)
		ps.cameFrom = make([]int, size)
		ps.closed = make([]bool, size)
	} else {
		ps.gScore = ps.gScore[:size]
		ps.cameFrom = ps.cameFrom[:size]
		ps.closed = ps.closed[:size]
	}
	for i := 0; i < size; i++ {
		ps.gScore[i] = math.Inf(1)
		ps.cameFrom[i] = -1
		ps.closed[i] = false
	}
	ps.heap.reset()
}

// maxExpandedNodes bounds a single search. The closed set already guarantees
// termination; the cap keeps one degenerate query from stalling a tick.
const maxExpandedNodes = 4096

// findPath runs A* from startID to goalID and returns the node id sequence
// including both endpoints, or nil when unreachable.
func (g *zoneGraph) findPath(startID, goalID int) []int {
	ps := &g.scratch
	ps.prepare(len(g.nodes))

	heuristic := func(id int) float64 {
		return g.nodes[id].Centroid.DistanceTo(g.nodes[goalID].Centroid)
	}

	ps.gScore[startID] = 0
	ps.heap.push(searchNode{id: startID, g: 0, f: heuristic(startID)})

	expanded := 0
	for len(ps.heap.nodes) > 0 && expanded < maxExpandedNodes {
		current, ok := ps.heap.pop()
		if !ok {
			break
		}
		if ps.closed[current.id] {
			continue
		}
		if current.g > ps.gScore[current.id] {
			continue
		}

		if current.id == goalID {
			return reconstructPath(ps, current.id)
		}

		ps.closed[current.id] = true
		expanded++

		for _, nid := range g.neighbors[current.id] {
			if ps.closed[nid] {
				continue
			}
			step := g.nodes[current.id].Centroid.DistanceTo(g.nodes[nid].Centroid)
			tentativeG := ps.gScore[current.id] + step
			if tentativeG < ps.gScore[nid] {
				ps.cameFrom[nid] = current.id
				ps.gScore[nid] = tentativeG
				ps.heap.push(searchNode{id: nid, g: tentativeG, f: tentativeG + heuristic(nid)})
			}
		}
	}

	return nil
}

func reconstructPath(ps *pathScratch, endID int) []int {
	ids := make([]int, 0, 16)
	for current := endID; current >= 0; current = ps.cameFrom[current] {
		ids = append(ids, current)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}
