// planner/plan_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"testing"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/graph"
	"github.com/kestrel-uas/flightplan/mission"
	"github.com/kestrel-uas/flightplan/util"
)

func baseWorld(t *testing.T) *mission.World {
	t.Helper()
	w := mission.NewWorld(geo.GeoPoint{Latitude: 38.145, Longitude: -76.428}, 0, 750)
	var el util.ErrorLogger
	w.AddBoundaries([]mission.GeoRecord{
		{Latitude: 38.140, Longitude: -76.433},
		{Latitude: 38.150, Longitude: -76.433},
		{Latitude: 38.150, Longitude: -76.423},
		{Latitude: 38.140, Longitude: -76.423},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected boundary errors: %s", el.String())
	}
	return w
}

// S1: two waypoints, no obstacles -> two-node path.
func TestPlanS1TwoWaypointsNoObstacles(t *testing.T) {
	w := baseWorld(t)
	var el util.ErrorLogger
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200},
		{Latitude: 38.1460, Longitude: -76.4270, Altitude: 200},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected errors: %s", el.String())
	}

	path, err := Plan(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(path.Nodes) != 2 {
		t.Fatalf("expected 2-node path, got %d", len(path.Nodes))
	}
}

// S2: as S1 plus an obstacle centred at the midpoint -> path detours
// through at least one extra node, none inside the obstacle's buffered
// disc.
func TestPlanS2DetoursAroundObstacle(t *testing.T) {
	w := baseWorld(t)
	var el util.ErrorLogger
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200},
		{Latitude: 38.1460, Longitude: -76.4270, Altitude: 200},
	}, &el)
	w.AddObstacles([]mission.Obstacle{
		{Latitude: 38.14575, Longitude: -76.42725, Radius: 300, Height: 750},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected errors: %s", el.String())
	}

	path, err := Plan(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(path.Nodes) < 3 {
		t.Fatalf("expected a detour of at least 3 nodes, got %d", len(path.Nodes))
	}
	for _, pt := range path.Positions() {
		for _, obs := range w.Obstacles {
			if obs.IntersectsSegment(pt, pt) {
				t.Errorf("path node %v lies inside obstacle buffered disc", pt)
			}
		}
	}
}

// S4: drop target within 15ft of the tour -> satisfied, path length
// unchanged.
func TestPlanS4DropWithinToleranceSatisfied(t *testing.T) {
	w := baseWorld(t)
	var el util.ErrorLogger
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1450, Longitude: -76.4280, Altitude: 200},
		{Latitude: 38.1460, Longitude: -76.4280, Altitude: 200},
		{Latitude: 38.1460, Longitude: -76.4270, Altitude: 200},
	}, &el)
	// Sits exactly on the tour's middle waypoint, well inside the 15ft
	// satisfaction threshold.
	w.AddDrop(&mission.GeoRecord{Latitude: 38.1460, Longitude: -76.4280}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected errors: %s", el.String())
	}

	g, err := graph.Build(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	tour, err := BuildTour(g)
	if err != nil {
		t.Fatal(err)
	}
	before := len(tour)

	tour, err = Integrate(g, w, tour, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Drop.Satisfied {
		t.Error("expected drop target to be satisfied by the tour")
	}
	if len(tour) != before {
		t.Errorf("expected path length unchanged, got %d want %d", len(tour), before)
	}
}

// S6: a waypoint placed inside an obstacle leaves it with no surviving
// edges, so the tour between it and the next waypoint fails.
func TestPlanS6WaypointInsideObstacleFails(t *testing.T) {
	w := baseWorld(t)
	var el util.ErrorLogger
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1450, Longitude: -76.4280, Altitude: 200},
		{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200},
	}, &el)
	w.AddObstacles([]mission.Obstacle{
		{Latitude: 38.1455, Longitude: -76.4275, Radius: 300, Height: 750},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected world construction errors: %s", el.String())
	}

	_, err := Plan(w, nil)
	if err == nil {
		t.Fatal("expected planning to fail for a waypoint embedded in an obstacle")
	}
}
