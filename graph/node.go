// graph/node.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package graph

import (
	"github.com/kestrel-uas/flightplan/geo"
)

// Kind tags why a node exists, for diagnostics; it plays no role in edge
// filtering or search.
type Kind int

const (
	KindWaypoint Kind = iota
	KindObstacleSample
	KindDrop
	KindOffAxis
)

func (k Kind) String() string {
	switch k {
	case KindWaypoint:
		return "waypoint"
	case KindObstacleSample:
		return "obstacle-sample"
	case KindDrop:
		return "drop"
	case KindOffAxis:
		return "off-axis"
	default:
		return "unknown"
	}
}

// Node is a graph vertex: a 3D point plus bookkeeping for diagnostics and
// for mapping waypoint indices back to node indices during tour
// construction. Nodes are stored in an arena (Graph.Nodes) and referenced
// by integer index everywhere else, per the arena-of-indices design this
// favors over using float coordinates as map keys.
type Node struct {
	Point geo.Point3
	Kind  Kind
	// WaypointIndex is the 0-based waypoint ordinal this node corresponds
	// to, or -1 if the node isn't a waypoint.
	WaypointIndex int
}
