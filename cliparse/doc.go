// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default for sqlite: secret-santa.db)
  - DatabaseType: sqlite (default) or postgres
  - Seed: match generator seed, 0 for a random seed
  - CORSOrigins: origins allowed cross-origin requests with credentials

# CLI Flags

	-p     Server port
	-d     Database URL
	-t     Database type
	-seed  Match generator seed
	-cors-origins  Comma-separated allowed origins

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	MATCH_SEED    → -seed
	CORS_ORIGINS  → -cors-origins

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing.

# Validation

ParseFlags returns an error if:

  - the database type is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - PORT or MATCH_SEED are not numbers
*/
package cliparse
