// mission/world.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"math"

	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/log"
	"github.com/kestrel-uas/flightplan/util"
)

// DropAltitudeFeet is the fixed altitude a drop target is stored at,
// regardless of the altitude (if any) present in the input record.
const DropAltitudeFeet = 500

// OffAxisOffNadirDegrees is the camera's off-nadir limit used to compute
// the optimal off-axis viewing altitude.
const OffAxisOffNadirDegrees = 75

// OffAxisCeilingFeet caps the computed off-axis viewing altitude.
const OffAxisCeilingFeet = 325

// Waypoint is an ordered 3D point the aircraft must visit, in visit order.
type Waypoint struct {
	Point geo.Point3
	Index int
}

// DropTarget is a ground point the aircraft should pass within
// DropSatisfactionFeet of, at DropAltitudeFeet.
type DropTarget struct {
	Point     geo.Point3
	Satisfied bool
}

// OffAxisTarget is a ground point that must be imaged off-nadir, along
// with the optimal viewing point computed against the fly-zone boundary.
type OffAxisTarget struct {
	Ground    geo.Point3 // the raw target, z=0
	Viewpoint geo.Point3 // optimal off-axis viewing point
	Satisfied bool
}

// World is the projected, typed store of a mission: everything the graph
// builder and planner need, already converted into the local tangent
// frame. It's built once via NewWorld and the add_* methods and is read
// thereafter.
type World struct {
	Frame geo.Frame

	Boundary geo.Ring
	AltMin   float64
	AltMax   float64

	Waypoints []Waypoint
	Obstacles []geo.Cylinder
	Drop      *DropTarget
	OffAxis   *OffAxisTarget
}

// NewWorld constructs an empty World anchored at origin with the given
// altitude band. Boundary, waypoints, obstacles and targets are added
// afterward via the add_* methods.
func NewWorld(origin geo.GeoPoint, altMin, altMax float64) *World {
	return &World{
		Frame:  geo.NewFrame(origin),
		AltMin: altMin,
		AltMax: altMax,
	}
}

// AddBoundaries projects and stores the fly-zone boundary ring, nudging
// each vertex inward per geo.Frame.BufferBoundaryVertex. Fails with
// ErrInvalidMission if fewer than 3 points are given.
func (w *World) AddBoundaries(pts []GeoRecord, el *util.ErrorLogger) {
	el.Push("flyZones[0].boundaryPoints")
	defer el.Pop()

	if len(pts) < 3 {
		el.ErrorString("%v: fly-zone boundary needs at least 3 points, got %d", ErrInvalidMission, len(pts))
		return
	}

	ring := make([]geo.Point2, len(pts))
	for i, p := range pts {
		ring[i] = w.Frame.BufferBoundaryVertex(geo.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
	}
	w.Boundary = geo.Ring{Points: ring}

	if boundarySelfIntersects(w.Boundary) {
		el.ErrorString("%v: fly-zone boundary self-intersects", ErrInvalidMission)
	}
}

// boundarySelfIntersects reports whether any two non-adjacent edges of
// the ring cross, an O(n^2) check appropriate for the small boundary
// rings these missions use.
func boundarySelfIntersects(r geo.Ring) bool {
	n := len(r.Points)
	for i := 0; i < n; i++ {
		a0, a1 := r.Points[i], r.Points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b0, b1 := r.Points[j], r.Points[(j+1)%n]
			if _, ok := geo.SegmentSegmentIntersect(a0, a1, b0, b1); ok {
				return true
			}
		}
	}
	return false
}

// AddWaypoints projects and appends ordered waypoints. Each must land
// inside the fly-zone boundary or ErrOutOfBounds is logged.
func (w *World) AddWaypoints(pts []GeoAlt, el *util.ErrorLogger) {
	el.Push("waypoints")
	defer el.Pop()

	if len(pts) == 0 {
		el.ErrorString("%v: mission has zero waypoints", ErrInvalidMission)
		return
	}

	for i, p := range pts {
		xy := w.Frame.Forward(geo.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
		pt := geo.Point3{X: xy[0], Y: xy[1], Z: p.Altitude}
		if !w.Boundary.Contains(xy) {
			el.ErrorString("%v: waypoint %d at (%.6f, %.6f)", ErrOutOfBounds, i, p.Latitude, p.Longitude)
		}
		w.Waypoints = append(w.Waypoints, Waypoint{Point: pt, Index: i})
	}
}

// AddObstacles projects and appends cylindrical no-fly obstacles, radii
// converted from feet to the frame's metres.
func (w *World) AddObstacles(obs []Obstacle, el *util.ErrorLogger) {
	el.Push("stationaryObstacles")
	defer el.Pop()

	for i, o := range obs {
		if o.Radius <= 0 || o.Height <= 0 {
			el.ErrorString("%v: obstacle %d has non-positive radius or height", ErrInvalidMission, i)
			continue
		}
		center := w.Frame.Forward(geo.GeoPoint{Latitude: o.Latitude, Longitude: o.Longitude})
		w.Obstacles = append(w.Obstacles, geo.Cylinder{
			Center:  center,
			RadiusM: o.Radius * geo.FeetToMeters,
			ZMin:    w.AltMin,
			ZMax:    o.Height,
		})
	}
}

// AddDrop projects and stores the air-drop target at DropAltitudeFeet.
func (w *World) AddDrop(p *GeoRecord, el *util.ErrorLogger) {
	if p == nil {
		return
	}
	el.Push("airDropPos")
	defer el.Pop()

	xy := w.Frame.Forward(geo.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
	if !w.Boundary.Contains(xy) {
		el.ErrorString("%v: drop target at (%.6f, %.6f)", ErrOutOfBounds, p.Latitude, p.Longitude)
	}
	w.Drop = &DropTarget{Point: geo.Point3{X: xy[0], Y: xy[1], Z: DropAltitudeFeet}}
}

// AddOffAxis projects the off-axis target and computes the optimal
// viewing point on the boundary ring: the closest boundary point, at an
// altitude of min(d*tan(75deg), 325) feet where d is the horizontal
// distance from the target to that boundary point.
func (w *World) AddOffAxis(p *GeoRecord, el *util.ErrorLogger, lg *log.Logger) {
	if p == nil {
		return
	}
	el.Push("offAxisOdlcPos")
	defer el.Pop()

	xy := w.Frame.Forward(geo.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude})
	closest, d := w.Boundary.ClosestPoint(xy)
	alt := math.Min(d*math.Tan(OffAxisOffNadirDegrees*math.Pi/180), OffAxisCeilingFeet)

	lg.Debugf("off-axis target at (%.6f, %.6f): boundary distance %.2fm, viewing altitude %.1fft", p.Latitude, p.Longitude, d, alt)

	w.OffAxis = &OffAxisTarget{
		Ground:    geo.Point3{X: xy[0], Y: xy[1], Z: 0},
		Viewpoint: geo.Point3{X: closest[0], Y: closest[1], Z: alt},
	}
}

