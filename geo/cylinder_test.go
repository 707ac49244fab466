// geo/cylinder_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import "testing"

func TestCylinderIntersectsSegment(t *testing.T) {
	c := Cylinder{Center: Point2{0, 0}, RadiusM: 300 * FeetToMeters, ZMin: 0, ZMax: 750}

	// Passes straight through the disc at an altitude within range.
	a := Point3{X: -500, Y: 0, Z: 300}
	b := Point3{X: 500, Y: 0, Z: 300}
	if !c.IntersectsSegment(a, b) {
		t.Error("segment through the cylinder's centre should intersect")
	}

	// Same horizontal path, but entirely above the obstacle's height.
	aHigh := Point3{X: -500, Y: 0, Z: 900}
	bHigh := Point3{X: 500, Y: 0, Z: 900}
	if c.IntersectsSegment(aHigh, bHigh) {
		t.Error("segment above the obstacle should clear it")
	}

	// Passes well clear of the disc horizontally.
	aFar := Point3{X: -500, Y: 1000, Z: 300}
	bFar := Point3{X: 500, Y: 1000, Z: 300}
	if c.IntersectsSegment(aFar, bFar) {
		t.Error("segment clear of the disc horizontally should not intersect")
	}
}

func TestCylinderOctagonSamples(t *testing.T) {
	c := Cylinder{Center: Point2{10, 20}, RadiusM: 100, ZMin: 0, ZMax: 500}
	pts := c.OctagonSamples(60, 5)
	for _, p := range pts {
		if p.Z != 60 {
			t.Errorf("expected sample altitude 60, got %v", p.Z)
		}
		d := Distance2(Point2{p.X, p.Y}, c.Center)
		if want := c.RadiusM + 5; d < want-1e-9 || d > want+1e-9 {
			t.Errorf("expected sample radius %v from centre, got %v", want, d)
		}
	}
}
