// geo/heuristic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import "math"

var (
	sqrt2 = math.Sqrt2
	sqrt3 = math.Sqrt(3)
)

// Octile3D returns the 3D octile distance between u and v: an admissible,
// consistent A* heuristic for grid-like node layouts that never exceeds
// the Euclidean distance. It operates directly on the node's raw
// components (x, y in metres, z in feet) without unit conversion, per the
// planner's mixed-unit convention -- see Point3.
func Octile3D(u, v Point3) float64 {
	dx := math.Abs(u.X - v.X)
	dy := math.Abs(u.Y - v.Y)
	dz := math.Abs(u.Z - v.Z)

	dmin, dmid, dmax := sort3(dx, dy, dz)
	return (sqrt3-sqrt2)*dmin + (sqrt2-1)*dmid + dmax*sqrt2
}

func sort3(a, b, c float64) (lo, mid, hi float64) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}
