// graph/builder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package graph

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/log"
	"github.com/kestrel-uas/flightplan/mission"
)

// ObstacleStepFeet is the altitude spacing between octagon sample rings
// around each obstacle.
const ObstacleStepFeet = 60

// ObstacleClearanceMeters is the extra horizontal margin added beyond an
// obstacle's buffered radius when placing sample nodes.
const ObstacleClearanceMeters = 5

// MaxClimbSlope is the per-axis |dz/dx| or |dz/dy| cutoff above which an
// edge is rejected as too steep to fly in both horizontal axes at once.
// No rationale is recorded for this value in the material this was
// distilled from; it's exposed here as a named, tunable constant rather
// than an inline literal.
const MaxClimbSlope = 0.9

// edgeWorkers bounds the number of goroutines used for the O(N^2)
// pairwise edge filter.
const edgeWorkers = 16

// Build assembles the visibility graph for w: one node per waypoint, an
// octagonal ring of sample nodes per obstacle per altitude step, and one
// node each for the drop and off-axis viewing targets (if present), then
// filters every candidate edge by climb slope, boundary crossing, and
// obstacle collision.
func Build(w *mission.World, lg *log.Logger) (*Graph, error) {
	g := &Graph{}
	populateNodes(g, w, lg)

	edges, err := filterEdges(g, w, lg)
	if err != nil {
		return nil, err
	}
	g.Edges = edges
	g.buildAdjacency()

	lg.Infof("graph built: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	return g, nil
}

func populateNodes(g *Graph, w *mission.World, lg *log.Logger) {
	for _, wp := range w.Waypoints {
		g.Nodes = append(g.Nodes, Node{Point: wp.Point, Kind: KindWaypoint, WaypointIndex: wp.Index})
	}

	for _, obs := range w.Obstacles {
		for z := w.AltMin; z < obs.ZMax; z += ObstacleStepFeet {
			for _, p := range obs.OctagonSamples(z, ObstacleClearanceMeters) {
				if !w.Boundary.Contains(p.XY()) {
					continue
				}
				g.Nodes = append(g.Nodes, Node{Point: p, Kind: KindObstacleSample, WaypointIndex: -1})
			}
		}
	}

	if w.Drop != nil {
		g.Nodes = append(g.Nodes, Node{Point: w.Drop.Point, Kind: KindDrop, WaypointIndex: -1})
	}
	if w.OffAxis != nil {
		g.Nodes = append(g.Nodes, Node{Point: w.OffAxis.Viewpoint, Kind: KindOffAxis, WaypointIndex: -1})
	}

	lg.Debugf("populated %d graph nodes (%d waypoints)", len(g.Nodes), len(w.Waypoints))
}

// filterEdges tests every unordered pair of distinct nodes and keeps the
// ones that survive the slope, boundary, and obstacle filters. Pairs are
// tested concurrently; results are written into a preallocated slice
// indexed by pair position so the surviving edge list comes out in a
// deterministic order regardless of goroutine scheduling.
func filterEdges(g *Graph, w *mission.World, lg *log.Logger) ([]Edge, error) {
	n := len(g.Nodes)
	if n < 2 {
		return nil, nil
	}

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	survives := make([]bool, len(pairs))
	weights := make([]float64, len(pairs))

	eg := errgroup.Group{}
	chunk := (len(pairs) + edgeWorkers - 1) / edgeWorkers
	if chunk == 0 {
		chunk = 1
	}
	for start := 0; start < len(pairs); start += chunk {
		end := start + chunk
		if end > len(pairs) {
			end = len(pairs)
		}
		start, end := start, end
		eg.Go(func() error {
			for k := start; k < end; k++ {
				a, b := g.Nodes[pairs[k].i].Point, g.Nodes[pairs[k].j].Point
				if !edgeFeasible(a, b, w) {
					continue
				}
				survives[k] = true
				weights[k] = geo.Distance3(a, b)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, len(pairs))
	for k, p := range pairs {
		if survives[k] {
			edges = append(edges, Edge{U: p.i, V: p.j, Weight: weights[k]})
		}
	}

	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})

	lg.Debugf("edge filter: %d candidate pairs, %d survive", len(pairs), len(edges))
	return edges, nil
}

// edgeFeasible applies the slope, boundary, and obstacle filters to a
// single candidate edge.
//
// The corrected edge-case behaviour applies here: when the mission has
// zero obstacles, the boundary check still runs rather than being
// skipped -- the source this was distilled from unconditionally added
// the edge in that case, which is treated here as a bug, not a feature.
func edgeFeasible(a, b geo.Point3, w *mission.World) bool {
	if !SlopeFeasible(a, b) {
		return false
	}

	if w.Boundary.IntersectsSegment(a.XY(), b.XY()) {
		return false
	}
	for _, obs := range w.Obstacles {
		if obs.IntersectsSegment(a, b) {
			return false
		}
	}
	return true
}

// SlopeFeasible reports whether a direct edge between a and b would pass
// the climb-slope filter, ignoring the boundary and obstacles entirely.
// A waypoint pair that fails this test is infeasible no matter how the
// rest of the mission is laid out, since nothing routes around a fixed
// pair of endpoint altitudes and positions -- the planner uses this to
// distinguish that case from a route merely blocked by terrain.
func SlopeFeasible(a, b geo.Point3) bool {
	dx, dy, dz := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)

	slopeXZ := steepness(dz, dx)
	slopeYZ := steepness(dz, dy)
	return slopeXZ < MaxClimbSlope || slopeYZ < MaxClimbSlope
}

// steepness returns |dz/dRun|, treating a zero run (vertical climb) as
// the slope value 2, per the spec's "infinite slope counts as 2"
// convention -- large enough to always exceed MaxClimbSlope without
// relying on IEEE-754 infinity comparisons.
func steepness(dz, dRun float64) float64 {
	if dRun == 0 {
		return 2
	}
	return dz / dRun
}
