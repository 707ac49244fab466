// geo/cylinder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import "math"

// FeetToMeters converts an obstacle radius or other horizontal distance
// given in feet to the metres used by the local tangent-plane frame.
const FeetToMeters = 0.3048

// Cylinder is the buffered hull of a no-fly obstacle: a vertical cylinder
// of radius RadiusM (already converted from feet) centred at Center,
// extruded from ZMin to ZMax (both feet). Per spec.md 4.2, collision
// testing here uses the 2D projection of the edge against the buffered
// disc, applied only when the edge's altitude range overlaps
// [ZMin, ZMax]. It is not a true 3D hull test: the altitude check looks
// at the whole edge's range, not its altitude where it crosses the disc.
type Cylinder struct {
	Center     Point2
	RadiusM    float64
	ZMin, ZMax float64
}

// IntersectsSegment reports whether the 3D segment (a,b) collides with
// the cylinder hull: its horizontal projection crosses the buffered disc
// while the segment's altitude range overlaps [ZMin, ZMax].
func (c Cylinder) IntersectsSegment(a, b Point3) bool {
	loZ, hiZ := math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)
	if hiZ < c.ZMin || loZ > c.ZMax {
		return false
	}
	return segmentIntersectsDisc(a.XY(), b.XY(), c.Center, c.RadiusM)
}

// segmentIntersectsDisc reports whether the 2D segment (a,b) intersects
// the closed disc of the given radius centred at c -- either endpoint
// lies inside the disc, or the segment passes within RadiusM of the
// centre.
func segmentIntersectsDisc(a, b, center Point2, radius float64) bool {
	if Distance2(a, center) <= radius || Distance2(b, center) <= radius {
		return true
	}
	d := closestPointOnSegment(center, a, b)
	return Distance2(d, center) <= radius
}

// OctagonSamples returns the 8 sample points around the cylinder's
// buffered disc at the given altitude, offset by an additional
// clearanceM of horizontal margin beyond the buffered radius, per
// spec.md 4.4's octagonal ring construction.
func (c Cylinder) OctagonSamples(z, clearanceM float64) [8]Point3 {
	var pts [8]Point3
	r := c.RadiusM + clearanceM
	for j := 0; j < 8; j++ {
		angle := 2 * math.Pi * float64(j) / 8
		pts[j] = Point3{
			X: r*math.Cos(angle) + c.Center[0],
			Y: r*math.Sin(angle) + c.Center[1],
			Z: z,
		}
	}
	return pts
}
