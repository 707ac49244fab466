// planner/plan.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/graph"
	"github.com/kestrel-uas/flightplan/log"
	"github.com/kestrel-uas/flightplan/mission"
)

// Path is the terminal output of planning: an ordered list of node
// indices into the graph that produced it.
type Path struct {
	Graph *graph.Graph
	Nodes []int
}

// Plan builds the visibility graph for w, constructs the waypoint tour,
// and folds in the drop and off-axis detours, returning the final path.
func Plan(w *mission.World, lg *log.Logger) (*Path, error) {
	g, err := graph.Build(w, lg)
	if err != nil {
		return nil, err
	}

	tour, err := BuildTour(g)
	if err != nil {
		return nil, err
	}

	tour, err = Integrate(g, w, tour, lg)
	if err != nil {
		return nil, err
	}

	return &Path{Graph: g, Nodes: tour}, nil
}

// Positions returns the path's points, still in local (x-metres,
// y-metres, z-feet) coordinates.
func (p *Path) Positions() []geo.Point3 {
	pts := make([]geo.Point3, len(p.Nodes))
	for i, ni := range p.Nodes {
		pts[i] = p.Graph.Nodes[ni].Point
	}
	return pts
}

// LatLonAlt inverts the coordinate projection on every node of the path,
// returning geodetic positions with altitude preserved verbatim in feet.
func (p *Path) LatLonAlt(frame geo.Frame) []mission.GeoAlt {
	out := make([]mission.GeoAlt, len(p.Nodes))
	for i, ni := range p.Nodes {
		pt := p.Graph.Nodes[ni].Point
		g := frame.Reverse(pt.XY())
		out[i] = mission.GeoAlt{Latitude: g.Latitude, Longitude: g.Longitude, Altitude: pt.Z}
	}
	return out
}
