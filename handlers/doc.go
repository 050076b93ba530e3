// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Secret Santa API.

# Handler Types

Each handler is a struct holding its dependencies:

  - ParticipantHandler: list, add and delete participants
  - MatchHandler: generate a match run

Handlers are created via constructor functions that accept a
store.ParticipantStore (and, for matches, a matcher.Rand):

	participantHandler := handlers.NewParticipantHandler(st)
	matchHandler := handlers.NewMatchHandler(st, matcher.NewLockedRand(cfg.Seed))

# Participants

	GET    /participants      → List
	POST   /participants      → Add (JSON {"name": ...} or form field name)
	DELETE /participants/{id} → Delete

Add and Delete answer with the updated participant list.

# Matches

	GET /matches → Generate

Each call reads a fresh snapshot from the store and runs the matcher once.
The response carries the name-keyed matches, the id-keyed pairs and the
odd-one-out's name when the count is odd. Results are not stored.
*/
package handlers
