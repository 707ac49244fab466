// diagnostics/metrics.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package diagnostics exposes Prometheus metrics for the planner and a
// structural dump of a failed plan's inputs, for a team running the
// planner repeatedly against a fleet of ground stations during a
// competition weekend.
package diagnostics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	NodesTotal = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightplan_nodes_total",
		Help:    "Number of graph nodes built per plan invocation.",
		Buckets: prometheus.ExponentialBuckets(8, 2, 10),
	})

	EdgesTotal = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightplan_edges_total",
		Help:    "Number of surviving graph edges per plan invocation.",
		Buckets: prometheus.ExponentialBuckets(8, 2, 14),
	})

	PlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightplan_plan_duration_seconds",
		Help:    "Wall-clock time to build the graph and run the planner.",
		Buckets: prometheus.DefBuckets,
	})

	PlanFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightplan_plan_failures_total",
		Help: "Planning failures by error kind.",
	}, []string{"kind"})
)

// Serve runs an HTTP server exposing /metrics on addr. It blocks until
// the server fails and returns that error, so callers run it in its own
// goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
