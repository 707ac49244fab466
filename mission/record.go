// mission/record.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

// Record is the wire format of a mission file: geodetic coordinates,
// untyped altitude units, exactly as it arrives from the ground station.
// The core never reads or writes this directly -- util.UnmarshalJSONBytes
// decodes it, and the CLI hands the result to NewWorld's add_* calls.
type Record struct {
	LostCommsPos    GeoRecord    `json:"lostCommsPos"`
	FlyZones        []FlyZone    `json:"flyZones"`
	Waypoints       []GeoAlt     `json:"waypoints"`
	Obstacles       []Obstacle   `json:"stationaryObstacles"`
	AirDropPos      *GeoRecord   `json:"airDropPos,omitempty"`
	OffAxisOdlcPos  *GeoRecord   `json:"offAxisOdlcPos,omitempty"`
	AutogenPoints   []GeoAlt     `json:"autogenPoints,omitempty"`
}

type GeoRecord struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeoAlt struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

type FlyZone struct {
	AltitudeMin    float64     `json:"altitudeMin"`
	AltitudeMax    float64     `json:"altitudeMax"`
	BoundaryPoints []GeoRecord `json:"boundaryPoints"`
}

type Obstacle struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"` // feet
	Height    float64 `json:"height"` // feet
}
