// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Secret Santa API server.

The server keeps a list of participants and pairs them at random: every
participant gets someone else to give to, and when the count is odd one
randomly chosen participant is matched to "Nobody".

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d secret-santa.db -seed 42

A .env file in the working directory is loaded into the environment first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string, required for postgres
  - MATCH_SEED (-seed): fixed generator seed, 0 for random

# Architecture

  - matcher: the pairing algorithm
  - store: participant storage (SQL and in-memory)
  - handlers: HTTP request handlers (participants, matches)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus counters and histograms
  - models: Request/response and domain types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
