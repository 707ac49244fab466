// planner/astar.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"container/heap"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/graph"
)

// AStar returns the lowest-weight path from start to goal as a sequence
// of node indices, using the 3D octile heuristic (geo.Octile3D). Returns
// (nil, false) if no path exists. Neighbour iteration is taken directly
// from graph.Graph.Neighbors, which is sorted by coordinate at build
// time, so repeated calls on the same graph produce identical paths.
func AStar(g *graph.Graph, start, goal int) ([]int, bool) {
	if start == goal {
		return []int{start}, true
	}

	open := &priorityQueue{}
	heap.Init(open)
	heap.Push(open, &pqItem{node: start, priority: 0})

	gScore := map[int]float64{start: 0}
	cameFrom := map[int]int{}
	closed := map[int]bool{}

	goalPoint := g.Nodes[goal].Point

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqItem)
		if closed[cur.node] {
			continue
		}
		if cur.node == goal {
			return reconstructPath(cameFrom, start, goal), true
		}
		closed[cur.node] = true

		for _, e := range g.Neighbors(cur.node) {
			if closed[e.V] {
				continue
			}
			tentative := gScore[cur.node] + e.Weight
			if best, ok := gScore[e.V]; ok && tentative >= best {
				continue
			}
			gScore[e.V] = tentative
			cameFrom[e.V] = cur.node
			h := geo.Octile3D(g.Nodes[e.V].Point, goalPoint)
			heap.Push(open, &pqItem{node: e.V, priority: tentative + h})
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[int]int, start, goal int) []int {
	path := []int{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem struct {
	node     int
	priority float64
	index    int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	// Tiebreak: lower index wins. index is the queue length at the time
	// the item was pushed, which is deterministic across runs but is not
	// the order in which nodes were discovered once items have been popped.
	return pq[i].index < pq[j].index
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
