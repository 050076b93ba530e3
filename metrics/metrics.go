// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus instrumentation for the matcher
// service: match runs, run sizes, odd-one-outs and participant changes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MatchRunsTotal counts generated match runs.
	MatchRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "secret_santa_match_runs_total",
		Help: "Total number of match runs generated",
	})

	// MatchParticipants records how many participants each run paired.
	MatchParticipants = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "secret_santa_match_participants",
		Help:    "Number of participants per match run",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
	})

	// OddOneOutTotal counts runs where someone was matched to Nobody.
	OddOneOutTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "secret_santa_odd_one_out_total",
		Help: "Total number of match runs with an odd-one-out",
	})

	// ParticipantChangesTotal counts store mutations, labeled by
	// op: "add" or "delete".
	ParticipantChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "secret_santa_participant_changes_total",
		Help: "Total number of participant additions and deletions",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(
		MatchRunsTotal,
		MatchParticipants,
		OddOneOutTotal,
		ParticipantChangesTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
