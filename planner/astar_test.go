// planner/astar_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"errors"
	"testing"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/graph"
	"github.com/kestrel-uas/flightplan/mission"
	"github.com/kestrel-uas/flightplan/util"
)

func twoWaypointWorld(t *testing.T) *mission.World {
	t.Helper()
	w := mission.NewWorld(geo.GeoPoint{Latitude: 38.145, Longitude: -76.425}, 0, 750)
	var el util.ErrorLogger
	w.AddBoundaries([]mission.GeoRecord{
		{Latitude: 38.140, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.420},
		{Latitude: 38.140, Longitude: -76.420},
	}, &el)
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200},
		{Latitude: 38.1460, Longitude: -76.4270, Altitude: 200},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected errors: %s", el.String())
	}
	return w
}

func TestAStarFindsDirectPath(t *testing.T) {
	w := twoWaypointWorld(t)
	g, err := graph.Build(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	path, ok := AStar(g, 0, 1)
	if !ok {
		t.Fatal("expected a path between the two waypoints")
	}
	if len(path) != 2 || path[0] != 0 || path[1] != 1 {
		t.Errorf("expected direct two-node path, got %v", path)
	}
}

func TestAStarDeterministic(t *testing.T) {
	w := twoWaypointWorld(t)
	var el util.ErrorLogger
	w.AddObstacles([]mission.Obstacle{
		{Latitude: 38.1457, Longitude: -76.4272, Radius: 200, Height: 750},
	}, &el)
	g, err := graph.Build(w, nil)
	if err != nil {
		t.Fatal(err)
	}

	p1, ok1 := AStar(g, 0, 1)
	p2, ok2 := AStar(g, 0, 1)
	if !ok1 || !ok2 {
		t.Fatal("expected both runs to find a path")
	}
	if len(p1) != len(p2) {
		t.Fatalf("non-deterministic path lengths: %v vs %v", p1, p2)
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("non-deterministic path: %v vs %v", p1, p2)
		}
	}
}

func TestBuildTourInfeasibleSlope(t *testing.T) {
	w := mission.NewWorld(geo.GeoPoint{Latitude: 38.145, Longitude: -76.425}, 0, 2000)
	var el util.ErrorLogger
	w.AddBoundaries([]mission.GeoRecord{
		{Latitude: 38.140, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.420},
		{Latitude: 38.140, Longitude: -76.420},
	}, &el)
	// Two waypoints about 1m apart horizontally but 1500ft apart in altitude:
	// far steeper than MaxClimbSlope on both axes, and with no obstacles
	// there are no intermediate nodes to break the climb into smaller
	// hops, so the direct edge is the only candidate.
	w.AddWaypoints([]mission.GeoAlt{
		{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200},
		{Latitude: 38.14551, Longitude: -76.4275, Altitude: 1700},
	}, &el)
	if el.HaveErrors() {
		t.Fatalf("unexpected errors: %s", el.String())
	}

	g, err := graph.Build(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = BuildTour(g)
	if err == nil {
		t.Fatal("expected an error")
	}
	var slopeErr *mission.InfeasibleSlopeError
	if !errors.As(err, &slopeErr) {
		t.Fatalf("expected *mission.InfeasibleSlopeError, got %T: %v", err, err)
	}
}

func TestBuildTourSingleWaypoint(t *testing.T) {
	w := mission.NewWorld(geo.GeoPoint{Latitude: 38.145, Longitude: -76.425}, 0, 750)
	var el util.ErrorLogger
	w.AddBoundaries([]mission.GeoRecord{
		{Latitude: 38.140, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.430},
		{Latitude: 38.150, Longitude: -76.420},
		{Latitude: 38.140, Longitude: -76.420},
	}, &el)
	w.AddWaypoints([]mission.GeoAlt{{Latitude: 38.1455, Longitude: -76.4275, Altitude: 200}}, &el)
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
	if len(tour) != 1 {
		t.Fatalf("expected single-node tour, got %v", tour)
	}
}
