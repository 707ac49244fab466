// geo/polygon_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import "testing"

func square(half float64) Ring {
	return Ring{Points: []Point2{
		{-half, -half}, {half, -half}, {half, half}, {-half, half},
	}}
}

func TestRingContains(t *testing.T) {
	type testCase struct {
		name     string
		point    Point2
		expected bool
	}
	r := square(10)
	cases := []testCase{
		{"center", Point2{0, 0}, true},
		{"inside-corner", Point2{9, 9}, true},
		{"outside", Point2{20, 0}, false},
		{"far-outside", Point2{-50, -50}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.point); got != c.expected {
				t.Errorf("Contains(%v) = %v, want %v", c.point, got, c.expected)
			}
		})
	}
}

func TestRingIntersectsSegment(t *testing.T) {
	r := square(10)

	// Entirely inside: no crossing.
	if r.IntersectsSegment(Point2{-5, -5}, Point2{5, 5}) {
		t.Error("interior segment should not cross the boundary")
	}

	// Crosses from inside to outside.
	if !r.IntersectsSegment(Point2{0, 0}, Point2{20, 0}) {
		t.Error("segment exiting the ring should cross the boundary")
	}

	// Entirely outside, not crossing.
	if r.IntersectsSegment(Point2{20, 20}, Point2{30, 30}) {
		t.Error("segment outside the ring should not cross it")
	}
}

func TestRingClosestPoint(t *testing.T) {
	r := square(10)
	closest, dist := r.ClosestPoint(Point2{0, 15})
	if closest[1] != 10 {
		t.Errorf("expected closest point on top edge, got %v", closest)
	}
	if dist != 5 {
		t.Errorf("expected distance 5, got %v", dist)
	}
}

func TestSegmentSegmentIntersect(t *testing.T) {
	p, ok := SegmentSegmentIntersect(Point2{0, 0}, Point2{10, 10}, Point2{0, 10}, Point2{10, 0})
	if !ok {
		t.Fatal("expected an intersection")
	}
	if p[0] != 5 || p[1] != 5 {
		t.Errorf("expected intersection at (5,5), got %v", p)
	}

	if _, ok := SegmentSegmentIntersect(Point2{0, 0}, Point2{1, 0}, Point2{5, 5}, Point2{6, 5}); ok {
		t.Error("disjoint segments should not report an intersection")
	}

	// Parallel lines never intersect.
	if _, ok := SegmentSegmentIntersect(Point2{0, 0}, Point2{1, 0}, Point2{0, 1}, Point2{1, 1}); ok {
		t.Error("parallel segments should not report an intersection")
	}
}
