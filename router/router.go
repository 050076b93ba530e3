// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/secret-santa/cliparse"
	"github.com/danielhkuo/secret-santa/handlers"
	"github.com/danielhkuo/secret-santa/matcher"
	"github.com/danielhkuo/secret-santa/metrics"
	"github.com/danielhkuo/secret-santa/middleware"
	"github.com/danielhkuo/secret-santa/store"
)

// NewRouter wires every route. A nil rng falls back to a generator
// seeded from cfg.Seed.
func NewRouter(st store.ParticipantStore, cfg cliparse.Config, rng matcher.Rand) *http.ServeMux {
	mux := http.NewServeMux()

	if rng == nil {
		rng = matcher.NewLockedRand(cfg.Seed)
	}

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(st)
	matchHandler := handlers.NewMatchHandler(st, rng)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", metrics.Handler())

	// Participants
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantHandler.List))
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Add))
	mux.HandleFunc("DELETE /participants/{id}", middleware.WithLogging(participantHandler.Delete))

	// Matching
	mux.HandleFunc("GET /matches", middleware.WithLogging(matchHandler.Generate))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret-santa API v1"))
	})

	return mux
}
