// planner/tour.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/kestrel-uas/flightplan/graph"
	"github.com/kestrel-uas/flightplan/mission"
)

// waypointNodes returns, for each waypoint in visit order, the index of
// its node in g.
func waypointNodes(g *graph.Graph) []int {
	byIndex := map[int]int{}
	for ni, n := range g.Nodes {
		if n.Kind == graph.KindWaypoint {
			byIndex[n.WaypointIndex] = ni
		}
	}
	nodes := make([]int, len(byIndex))
	for wi, ni := range byIndex {
		nodes[wi] = ni
	}
	return nodes
}

// BuildTour runs A* between each consecutive pair of waypoints and
// concatenates the segments, omitting the duplicate first node of every
// segment after the first. If a consecutive pair is unreachable, fails
// with mission.InfeasibleSlopeError when the pair's direct edge fails
// graph.SlopeFeasible, and with mission.NoRouteError otherwise.
func BuildTour(g *graph.Graph) ([]int, error) {
	wps := waypointNodes(g)
	if len(wps) == 0 {
		return nil, mission.ErrInvalidMission
	}
	if len(wps) == 1 {
		return []int{wps[0]}, nil
	}

	tour := []int{wps[0]}
	for i := 0; i+1 < len(wps); i++ {
		seg, ok := AStar(g, wps[i], wps[i+1])
		if !ok {
			if !graph.SlopeFeasible(g.Nodes[wps[i]].Point, g.Nodes[wps[i+1]].Point) {
				return nil, &mission.InfeasibleSlopeError{From: i, To: i + 1}
			}
			return nil, &mission.NoRouteError{From: i, To: i + 1}
		}
		tour = append(tour, seg[1:]...)
	}
	return tour, nil
}
