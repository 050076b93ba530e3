// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Secret Santa API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg, nil)

Passing a nil generator seeds one from cfg.Seed.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Participants:

	GET    /participants      - List participants
	POST   /participants      - Add participant
	DELETE /participants/{id} - Delete participant

Matching:

	GET /matches - Generate a match run

All API routes are wrapped in middleware.WithLogging.
*/
package router
