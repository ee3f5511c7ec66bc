// Package nav builds a navigation graph per zone and answers node, group and
// path queries against it. Node IDs ascend in row-major grid order and group
// numbering follows the lowest node id it contains, so iteration order, and
// therefore tie-breaking in callers that score nodes, is stable across runs.
package nav

import (
	"math"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/world"
)

// Node is one navmesh vertex: an id and the world-space centroid of its cell.
type Node struct {
	ID       int
	Centroid mathutil.Vec3
}

// Mesh answers navigation queries for a set of zones. Queries reuse internal
// scratch buffers and must not be issued concurrently; the simulation is
// single-threaded by design.
type Mesh struct {
	graphs map[string]*zoneGraph
}

type zoneGraph struct {
	zone      *world.Zone
	nodes     []Node
	neighbors [][]int
	group     []int
	cellNode  map[[2]int]int
	scratch   pathScratch
}

// BuildMesh derives a navigation graph for every zone: one node per walkable
// cell, 4-way adjacency, connectivity groups by flood fill.
func BuildMesh(zones map[string]*world.Zone) *Mesh {
	m := &Mesh{graphs: make(map[string]*zoneGraph, len(zones))}
	for name, zone := range zones {
		m.graphs[name] = buildZoneGraph(zone)
	}
	return m
}

func buildZoneGraph(zone *world.Zone) *zoneGraph {
	g := &zoneGraph{
		zone:     zone,
		cellNode: make(map[[2]int]int),
	}

	// Row-major walk assigns ascending node ids.
	for cz := 0; cz < zone.Height; cz++ {
		for cx := 0; cx < zone.Width; cx++ {
			if !zone.Walkable(cx, cz) {
				continue
			}
			id := len(g.nodes)
			g.cellNode[[2]int{cx, cz}] = id
			g.nodes = append(g.nodes, Node{ID: id, Centroid: zone.CellCenter(cx, cz)})
		}
	}

	g.neighbors = make([][]int, len(g.nodes))
	for cell, id := range g.cellNode {
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			if nid, ok := g.cellNode[[2]int{cell[0] + d[0], cell[1] + d[1]}]; ok {
				g.neighbors[id] = append(g.neighbors[id], nid)
			}
		}
	}

	g.group = make([]int, len(g.nodes))
	for i := range g.group {
		g.group[i] = -1
	}
	next := 0
	for id := range g.nodes {
		if g.group[id] != -1 {
			continue
		}
		g.floodFill(id, next)
		next++
	}

	return g
}

func (g *zoneGraph) floodFill(start, group int) {
	stack := []int{start}
	g.group[start] = group
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nid := range g.neighbors[id] {
			if g.group[nid] == -1 {
				g.group[nid] = group
				stack = append(stack, nid)
			}
		}
	}
}

// Group returns the connectivity group containing point p. When p does not
// sit on a walkable cell and autoCorrect is set, the group of the nearest
// node is returned instead.
func (m *Mesh) Group(zone string, p mathutil.Vec3, autoCorrect bool) (int, bool) {
	g, ok := m.graphs[zone]
	if !ok || len(g.nodes) == 0 {
		return 0, false
	}
	if cx, cz, ok := g.zone.CellAt(p); ok {
		if id, ok := g.cellNode[[2]int{cx, cz}]; ok {
			return g.group[id], true
		}
	}
	if !autoCorrect {
		return 0, false
	}
	id, ok := g.nearest(p, -1)
	if !ok {
		return 0, false
	}
	return g.group[id], true
}

// ClosestNode returns the node nearest to p within the given group.
func (m *Mesh) ClosestNode(p mathutil.Vec3, zone string, group int) (Node, bool) {
	g, ok := m.graphs[zone]
	if !ok {
		return Node{}, false
	}
	if cx, cz, ok := g.zone.CellAt(p); ok {
		if id, ok := g.cellNode[[2]int{cx, cz}]; ok && g.group[id] == group {
			return g.nodes[id], true
		}
	}
	id, ok := g.nearest(p, group)
	if !ok {
		return Node{}, false
	}
	return g.nodes[id], true
}

// nearest scans for the node with minimum centroid distance to p, optionally
// restricted to a group (-1 for any). Lower ids win ties.
func (g *zoneGraph) nearest(p mathutil.Vec3, group int) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for id := range g.nodes {
		if group >= 0 && g.group[id] != group {
			continue
		}
		d := g.nodes[id].Centroid.Flatten().DistanceTo(p.Flatten())
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// NodesIn returns every node of the group in ascending id order.
func (m *Mesh) NodesIn(zone string, group int) []Node {
	g, ok := m.graphs[zone]
	if !ok {
		return nil
	}
	var nodes []Node
	for id := range g.nodes {
		if g.group[id] == group {
			nodes = append(nodes, g.nodes[id])
		}
	}
	return nodes
}

// FindPath resolves both points to their nearest in-group nodes and returns
// the centroid sequence between them, or nil when no route exists.
func (m *Mesh) FindPath(from, to mathutil.Vec3, zone string, group int) []mathutil.Vec3 {
	g, ok := m.graphs[zone]
	if !ok {
		return nil
	}
	start, ok := m.ClosestNode(from, zone, group)
	if !ok {
		return nil
	}
	goal, ok := m.ClosestNode(to, zone, group)
	if !ok {
		return nil
	}

	ids := g.findPath(start.ID, goal.ID)
	if ids == nil {
		return nil
	}
	path := make([]mathutil.Vec3, len(ids))
	for i, id := range ids {
		path[i] = g.nodes[id].Centroid
	}
	return path
}
