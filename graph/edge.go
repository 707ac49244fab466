// graph/edge.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package graph

import "sort"

// Edge is an undirected weighted connection between two node indices.
// In Graph.Edges U is always < V so an edge has one canonical
// representation; edges returned by Neighbors(u) have U == u instead.
type Edge struct {
	U, V   int
	Weight float64
}

// Graph is the visibility graph: an arena of nodes plus the adjacency
// derived from the surviving edges. Node indices are stable for the
// lifetime of the Graph.
type Graph struct {
	Nodes []Node
	Edges []Edge

	adjacency [][]Edge
}

// Neighbors returns the edges incident to node u, sorted by the
// neighbour's coordinates (x, then y, then z; sorted once by
// buildAdjacency) so callers get deterministic iteration order.
func (g *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[u]
}

// buildAdjacency populates the adjacency lists from Edges, once, after
// all edges have been added and sorted.
func (g *Graph) buildAdjacency() {
	g.adjacency = make([][]Edge, len(g.Nodes))
	for _, e := range g.Edges {
		g.adjacency[e.U] = append(g.adjacency[e.U], Edge{U: e.U, V: e.V, Weight: e.Weight})
		g.adjacency[e.V] = append(g.adjacency[e.V], Edge{U: e.V, V: e.U, Weight: e.Weight})
	}
	for _, edges := range g.adjacency {
		sort.Slice(edges, func(a, b int) bool {
			pa, pb := g.Nodes[edges[a].V].Point, g.Nodes[edges[b].V].Point
			if pa.X != pb.X {
				return pa.X < pb.X
			}
			if pa.Y != pb.Y {
				return pa.Y < pb.Y
			}
			return pa.Z < pb.Z
		})
	}
}
