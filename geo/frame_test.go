// geo/frame_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geo

import (
	"math"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	origin := GeoPoint{Latitude: 38.145, Longitude: -76.428}
	f := NewFrame(origin)

	type testCase struct {
		name string
		pt   GeoPoint
	}
	cases := []testCase{
		{"origin", origin},
		{"near", GeoPoint{38.1455, -76.4275}},
		{"far-north", GeoPoint{38.190, -76.428}},
		{"far-east", GeoPoint{38.145, -76.380}},
		{"southwest", GeoPoint{38.110, -76.470}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			xy := f.Forward(c.pt)
			back := f.Reverse(xy)

			dlat := math.Abs(back.Latitude - c.pt.Latitude)
			dlon := math.Abs(back.Longitude - c.pt.Longitude)
			// 1cm in degrees, very roughly, at this latitude.
			const tolDeg = 0.01 / 111320.0
			if dlat > tolDeg {
				t.Errorf("latitude round-trip error %.10f exceeds 1cm tolerance", dlat)
			}
			if dlon > tolDeg {
				t.Errorf("longitude round-trip error %.10f exceeds 1cm tolerance", dlon)
			}
		})
	}
}

func TestBufferBoundaryVertexDirection(t *testing.T) {
	origin := GeoPoint{Latitude: 38.145, Longitude: -76.428}
	f := NewFrame(origin)

	// North and east of the origin: both axes should move toward it.
	ne := f.BufferBoundaryVertex(GeoPoint{Latitude: 38.150, Longitude: -76.420})
	raw := f.Forward(GeoPoint{Latitude: 38.150, Longitude: -76.420})
	if ne[0] != raw[0]-BoundaryBufferMeters {
		t.Errorf("expected x nudged by -%v, got delta %v", BoundaryBufferMeters, ne[0]-raw[0])
	}
	if ne[1] != raw[1]-BoundaryBufferMeters {
		t.Errorf("expected y nudged by -%v, got delta %v", BoundaryBufferMeters, ne[1]-raw[1])
	}

	// South and west of the origin: both axes should move toward it from the other side.
	sw := f.BufferBoundaryVertex(GeoPoint{Latitude: 38.140, Longitude: -76.440})
	rawSW := f.Forward(GeoPoint{Latitude: 38.140, Longitude: -76.440})
	if sw[0] != rawSW[0]+BoundaryBufferMeters {
		t.Errorf("expected x nudged by +%v, got delta %v", BoundaryBufferMeters, sw[0]-rawSW[0])
	}
	if sw[1] != rawSW[1]+BoundaryBufferMeters {
		t.Errorf("expected y nudged by +%v, got delta %v", BoundaryBufferMeters, sw[1]-rawSW[1])
	}
}
