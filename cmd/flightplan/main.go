// cmd/flightplan/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/apenwarr/fixconsole"
	"github.com/ncruces/zenity"

	"github.com/kestrel-uas/flightplan/archive"
	"github.com/kestrel-uas/flightplan/diagnostics"
	"github.com/kestrel-uas/flightplan/geo"
	"github.com/kestrel-uas/flightplan/log"
	"github.com/kestrel-uas/flightplan/mission"
	"github.com/kestrel-uas/flightplan/planner"
	"github.com/kestrel-uas/flightplan/util"
)

var (
	missionFile  = flag.String("file", "", "mission input file (JSON); prompts with a file picker if omitted")
	addDrop      = flag.Bool("drop", true, "add the air-drop target to the mission")
	addOffAxis   = flag.Bool("off", true, "add the off-axis imaging target to the mission")
	addObstacles = flag.Bool("obstacles", true, "add stationary obstacles to the mission")
	autopilotIP  = flag.String("ip", "", "autopilot address (host:port); opaque to the planner, used only by the uploader")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	cacheSize    = flag.Int("cache", 64, "number of planned missions to keep in the in-memory plan cache")
	archiveDir   = flag.String("archive", "", "directory or bucket name to archive planned missions to; disabled if empty")
	archiveKind  = flag.String("archive-backend", "local", "archive backend: local, gcs, or s3")
	metricsAddr  = flag.String("metrics-addr", "", "address to serve Prometheus metrics on; disabled if empty")
	dumpOnFail   = flag.Bool("dump", false, "dump mission structure to stdout if planning fails")
	listArchive  = flag.Bool("list", false, "list archived plans under --archive (gcs only) instead of planning a mission")
)

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)

	if *autopilotIP != "" {
		lg.Infof("autopilot address %s configured; upload is outside the planner's scope", *autopilotIP)
	}

	if *metricsAddr != "" {
		go func() {
			if err := diagnostics.Serve(*metricsAddr); err != nil {
				lg.Errorf("metrics server: %v", err)
			}
		}()
	}

	if *listArchive {
		if err := listArchivedPlans(lg); err != nil {
			lg.Errorf("%v", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// listArchivedPlans prints every archived plan under --archive and its
// size, via the plain GCS REST API rather than the full storage client --
// this is a status query, not part of the planning hot path, and doesn't
// need a read-write client.
func listArchivedPlans(lg *log.Logger) error {
	if *archiveDir == "" {
		return fmt.Errorf("--list requires --archive to name a bucket")
	}
	if *archiveKind != "gcs" {
		return fmt.Errorf("--list is only implemented for --archive-backend=gcs")
	}

	var creds []byte
	if v := os.Getenv("FLIGHTPLAN_GCS_CREDENTIALS"); v != "" {
		creds = []byte(v)
	}

	inv, err := archive.NewGCSInventory(context.Background(), *archiveDir, creds)
	if err != nil {
		return err
	}
	objects, err := inv.List(context.Background(), "")
	if err != nil {
		return err
	}

	keys := util.SortedMapKeys(objects)
	for _, name := range keys {
		fmt.Printf("%s\t%d\n", name, objects[name])
	}
	lg.Infof("listed %d archived plans under %s", len(keys), *archiveDir)
	return nil
}

func run(lg *log.Logger) error {
	path, err := resolveMissionFile(*missionFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var rec mission.Record
	if err := util.UnmarshalJSONBytes(data, &rec); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cache, err := archive.NewPlanCache(*cacheSize)
	if err != nil {
		return err
	}
	key, err := archive.Key(&rec)
	if err != nil {
		return err
	}
	if cached, ok := cache.Get(key); ok {
		lg.Infof("plan cache hit for %s", path)
		return writeOutput(path, &rec, cached)
	}

	w, el, err := buildWorld(&rec, lg)
	if err != nil {
		return err
	}
	if el.HaveErrors() {
		el.PrintErrors(lg)
		return fmt.Errorf("%w: %s", mission.ErrInvalidMission, el.String())
	}

	start := time.Now()
	result, err := planner.Plan(w, lg)
	diagnostics.PlanDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		diagnostics.PlanFailures.WithLabelValues(errorKind(err)).Inc()
		if *dumpOnFail {
			diagnostics.DumpMission(w)
		}
		return err
	}
	diagnostics.NodesTotal.Observe(float64(len(result.Graph.Nodes)))
	diagnostics.EdgesTotal.Observe(float64(len(result.Graph.Edges)))

	geoPath := result.LatLonAlt(w.Frame)
	cache.Put(key, geoPath)

	if *archiveDir != "" {
		if err := archivePlan(key, geoPath); err != nil {
			lg.Warnf("archive: %v", err)
		}
	}

	return writeOutput(path, &rec, geoPath)
}

// archivePlan stores the planned path under the given key using whichever
// backend --archive-backend selects.
func archivePlan(key string, geoPath []mission.GeoAlt) error {
	ctx := context.Background()

	var backend archive.Backend
	var err error
	switch *archiveKind {
	case "gcs":
		backend, err = archive.NewGCSBackend(ctx, *archiveDir)
	case "s3":
		backend, err = archive.NewS3Backend(ctx, *archiveDir)
	default:
		backend, err = archive.NewLocalBackend(*archiveDir)
	}
	if err != nil {
		return err
	}
	defer backend.Close()

	_, err = backend.StoreObject(key+".plan", geoPath)
	return err
}

func buildWorld(rec *mission.Record, lg *log.Logger) (*mission.World, *util.ErrorLogger, error) {
	if len(rec.FlyZones) == 0 {
		return nil, nil, fmt.Errorf("%w: mission has no flyZones entry", mission.ErrInvalidMission)
	}
	zone := rec.FlyZones[0]

	origin := geo.GeoPoint{Latitude: rec.LostCommsPos.Latitude, Longitude: rec.LostCommsPos.Longitude}
	w := mission.NewWorld(origin, zone.AltitudeMin, zone.AltitudeMax)

	el := &util.ErrorLogger{}
	w.AddBoundaries(zone.BoundaryPoints, el)
	w.AddWaypoints(rec.Waypoints, el)

	if *addObstacles {
		w.AddObstacles(rec.Obstacles, el)
	}
	if *addDrop {
		w.AddDrop(rec.AirDropPos, el)
	}
	if *addOffAxis {
		w.AddOffAxis(rec.OffAxisOdlcPos, el, lg)
	}

	return w, el, nil
}

// resolveMissionFile returns the configured mission file, or prompts
// with a native file picker if none was given on the command line.
func resolveMissionFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return zenity.SelectFile(
		zenity.Title("Select Mission JSON File"),
		zenity.FileFilters{{Name: "JSON Files", Patterns: []string{"*.json"}}},
	)
}

// writeOutput prints the planned path and writes it back into the
// mission record under autogenPoints, preserving the rest of the input
// structure via an order-preserving JSON round trip.
func writeOutput(path string, rec *mission.Record, geoPath []mission.GeoAlt) error {
	for _, p := range geoPath {
		fmt.Printf("%.6f,%.6f,%.1f\n", p.Latitude, p.Longitude, p.Altitude)
	}

	rec.AutogenPoints = geoPath

	om := util.NewOrderedMap()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := om.UnmarshalJSON(data); err != nil {
		return err
	}
	om.Set("autogenPoints", geoPath)

	out, err := om.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

func errorKind(err error) string {
	switch err.(type) {
	case *mission.NoRouteError:
		return "no_route"
	case *mission.InfeasibleSlopeError:
		return "infeasible_slope"
	default:
		return "other"
	}
}
