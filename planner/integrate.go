// planner/integrate.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"math"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/graph"
	"github.com/kestrel-uas/flightplan/log"
	"github.com/kestrel-uas/flightplan/mission"
)

// DropSatisfactionFeet is the horizontal-distance threshold below which a
// drop target is considered already satisfied by the waypoint tour. It is
// converted to metres before being compared with the horizontal distance.
const DropSatisfactionFeet = 15

// OffAxisSatisfactionRatio is the q.z / horizontal_distance(q, target)
// threshold above which a point on the tour already puts the off-axis
// target inside the camera's off-nadir cone. It is approximately
// tan(70deg); the ratio mixes a feet-denominated altitude with a
// metres-denominated distance exactly as in the material this is
// grounded on, a unit mismatch flagged rather than silently fixed.
const OffAxisSatisfactionRatio = 2.74

// projectOntoPolyline finds the point on the polyline through the given
// node indices closest to target, in the mixed-unit 3D space the rest of
// the planner uses, and returns that point plus the index of the segment
// (i, i+1 in nodeIndices) it falls on.
func projectOntoPolyline(g *graph.Graph, nodeIndices []int, target geo.Point3) (geo.Point3, int) {
	best := math.Inf(1)
	var bestPoint geo.Point3
	bestSeg := 0
	for i := 0; i+1 < len(nodeIndices); i++ {
		v, w := g.Nodes[nodeIndices[i]].Point, g.Nodes[nodeIndices[i+1]].Point
		c := geo.ClosestPointOnSegment3(target, v, w)
		if d := geo.Distance3(target, c); d < best {
			best = d
			bestPoint = c
			bestSeg = i
		}
	}
	return bestPoint, bestSeg
}

func horizontalDistance(a, b geo.Point3) float64 {
	return geo.Distance2(a.XY(), b.XY())
}

// Integrate decides whether the drop and off-axis targets are already
// satisfied by the waypoint tour, and if not, appends A* detour segments
// from the tour's tail. It mutates w.Drop.Satisfied / w.OffAxis.Satisfied
// and the stored viewing/drop points in place, per the spec's "replace
// the stored point with the projection" rule.
func Integrate(g *graph.Graph, w *mission.World, tour []int, lg *log.Logger) ([]int, error) {
	offAxisNeeded := false
	dropNeeded := false

	if w.OffAxis != nil {
		q, _ := projectOntoPolyline(g, tour, w.OffAxis.Ground)
		d := horizontalDistance(q, w.OffAxis.Ground)
		ratio := math.Inf(1)
		if d > 0 {
			ratio = q.Z / d
		}
		if ratio > OffAxisSatisfactionRatio {
			w.OffAxis.Satisfied = true
			w.OffAxis.Viewpoint = q
			lg.Debugf("off-axis target satisfied by tour at ratio %.3f", ratio)
		} else {
			offAxisNeeded = true
		}
	}

	if w.Drop != nil {
		q, _ := projectOntoPolyline(g, tour, w.Drop.Point)
		d := horizontalDistance(q, w.Drop.Point)
		if d < DropSatisfactionFeet*geo.FeetToMeters {
			w.Drop.Satisfied = true
			w.Drop.Point = q
			lg.Debugf("drop target satisfied by tour at %.2fm", d)
		} else {
			dropNeeded = true
		}
	}

	if !offAxisNeeded && !dropNeeded {
		return tour, nil
	}

	tail := tour[len(tour)-1]
	offAxisNode, dropNode := -1, -1
	for ni, n := range g.Nodes {
		if offAxisNeeded && n.Kind == graph.KindOffAxis {
			offAxisNode = ni
		}
		if dropNeeded && n.Kind == graph.KindDrop {
			dropNode = ni
		}
	}

	switch {
	case offAxisNeeded && dropNeeded:
		offSeg, offOK := AStar(g, tail, offAxisNode)
		dropSeg, dropOK := AStar(g, tail, dropNode)
		if !offOK && !dropOK {
			return nil, &mission.NoRouteError{From: tail, To: offAxisNode}
		}
		first, firstOK, second, secondOK := offSeg, offOK, dropSeg, dropOK
		if dropOK && (!offOK || segmentLength(g, dropSeg) < segmentLength(g, offSeg)) {
			first, firstOK, second, secondOK = dropSeg, dropOK, offSeg, offOK
		}
		if firstOK {
			tour = append(tour, first[1:]...)
		}
		if secondOK {
			from := tour[len(tour)-1]
			seg, ok := AStar(g, from, second[len(second)-1])
			if ok {
				tour = append(tour, seg[1:]...)
			}
		}
	case offAxisNeeded:
		seg, ok := AStar(g, tail, offAxisNode)
		if !ok {
			return nil, &mission.NoRouteError{From: tail, To: offAxisNode}
		}
		tour = append(tour, seg[1:]...)
	case dropNeeded:
		seg, ok := AStar(g, tail, dropNode)
		if !ok {
			return nil, &mission.NoRouteError{From: tail, To: dropNode}
		}
		tour = append(tour, seg[1:]...)
	}

	return tour, nil
}

func segmentLength(g *graph.Graph, seg []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(seg); i++ {
		total += geo.Distance3(g.Nodes[seg[i]].Point, g.Nodes[seg[i+1]].Point)
	}
	return total
}
