// diagnostics/dump.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package diagnostics

import (
	"fmt"

	"github.com/goforj/godump"

	"github.com/kestrel-uas/flightplan/mission"
)

// DumpMission prints a structural dump of a mission World to stdout, for
// staring at when a plan fails and the JSON input isn't illuminating
// enough on its own.
func DumpMission(w *mission.World) {
	fmt.Println("Fly-zone boundary:")
	godump.Dump(w.Boundary)
	fmt.Println("Waypoints:")
	godump.Dump(w.Waypoints)
	fmt.Println("Obstacles:")
	godump.Dump(w.Obstacles)
	if w.Drop != nil {
		fmt.Println("Drop target:")
		godump.Dump(*w.Drop)
	}
	if w.OffAxis != nil {
		fmt.Println("Off-axis target:")
		godump.Dump(*w.OffAxis)
	}
}
