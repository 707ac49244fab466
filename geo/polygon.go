// geo/polygon.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import "math"

// Ring is a closed 2D polygon boundary; the last vertex does not repeat
// the first -- the edge from Points[len-1] to Points[0] is implicit, per
// the teacher's PointInPolygon convention (pkg/math/geom.go).
type Ring struct {
	Points []Point2
}

// Contains reports whether p is inside the ring, using the standard
// even-odd crossing-number test.
func (r Ring) Contains(p Point2) bool {
	inside := false
	n := len(r.Points)
	for i := 0; i < n; i++ {
		p0, p1 := r.Points[i], r.Points[(i+1)%n]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if x > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectsSegment reports whether any edge of the ring crosses the
// segment (a, b).
func (r Ring) IntersectsSegment(a, b Point2) bool {
	n := len(r.Points)
	for i := 0; i < n; i++ {
		p0, p1 := r.Points[i], r.Points[(i+1)%n]
		if _, ok := SegmentSegmentIntersect(a, b, p0, p1); ok {
			return true
		}
	}
	return false
}

// ClosestPoint returns the point on the ring closest to p and the
// unsigned distance between them.
func (r Ring) ClosestPoint(p Point2) (closest Point2, dist float64) {
	n := len(r.Points)
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		v, w := r.Points[i], r.Points[(i+1)%n]
		c := closestPointOnSegment(p, v, w)
		if d := Distance2(p, c); d < best {
			best = d
			closest = c
		}
	}
	return closest, best
}

func closestPointOnSegment(p, v, w Point2) Point2 {
	l := Sub2(w, v)
	l2 := Dot2(l, l)
	if l2 == 0 {
		return v
	}
	t := Clamp(Dot2(Sub2(p, v), l)/l2, 0, 1)
	return Add2(v, Scale2(l, t))
}

// LineLineIntersect returns the intersection point of the infinite lines
// through (p1,p2) and (p3,p4), and whether one exists (false for parallel
// or near-parallel lines). Computed as the teacher notes in geom.go: in
// float64 throughout, since differences of similar magnitudes lose
// precision quickly in float32.
func LineLineIntersect(p1, p2, p3, p4 Point2) (Point2, bool) {
	d12 := Sub2(p1, p2)
	d34 := Sub2(p3, p4)
	denom := d12[0]*d34[1] - d12[1]*d34[0]
	if math.Abs(denom) < 1e-9 {
		return Point2{}, false
	}
	numx := (p1[0]*p2[1]-p1[1]*p2[0])*(p3[0]-p4[0]) - (p1[0]-p2[0])*(p3[0]*p4[1]-p3[1]*p4[0])
	numy := (p1[0]*p2[1]-p1[1]*p2[0])*(p3[1]-p4[1]) - (p1[1]-p2[1])*(p3[0]*p4[1]-p3[1]*p4[0])
	return Point2{numx / denom, numy / denom}, true
}

// SegmentSegmentIntersect returns the intersection of segments (p1,p2)
// and (p3,p4), and whether it falls within both segments' bounding boxes.
func SegmentSegmentIntersect(p1, p2, p3, p4 Point2) (Point2, bool) {
	p, ok := LineLineIntersect(p1, p2, p3, p4)
	if !ok {
		return Point2{}, false
	}
	inBox := func(p, a, b Point2) bool {
		lo0, hi0 := math.Min(a[0], b[0]), math.Max(a[0], b[0])
		lo1, hi1 := math.Min(a[1], b[1]), math.Max(a[1], b[1])
		const eps = 1e-7
		return p[0] >= lo0-eps && p[0] <= hi0+eps && p[1] >= lo1-eps && p[1] <= hi1+eps
	}
	return p, inBox(p, p1, p2) && inBox(p, p3, p4)
}
