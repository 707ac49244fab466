// mission/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMission = errors.New("invalid mission")
	ErrOutOfBounds    = errors.New("point lies outside the fly-zone")
	ErrProjection     = errors.New("coordinate projection failed")
)

// InfeasibleSlopeError reports that two consecutive waypoints cannot be
// connected by any edge surviving the climb-slope filter, even taken in
// isolation from the rest of the graph.
type InfeasibleSlopeError struct {
	From, To int
}

func (e *InfeasibleSlopeError) Error() string {
	return fmt.Sprintf("waypoints %d and %d cannot be connected within the climb-slope limit", e.From, e.To)
}

// NoRouteError reports that A* found no path between two waypoints.
type NoRouteError struct {
	From, To int
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route found between waypoints %d and %d", e.From, e.To)
}
