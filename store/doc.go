// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the participant list.

ParticipantStore is the only boundary the matcher depends on:

	participants, err := st.ListParticipants(ctx)
	result := matcher.GenerateMatches(rng, participants)

# Implementations

  - SQLStore: database/sql backed, works with the postgres and sqlite
    drivers (see package db for the schema)
  - MemoryStore: in-process, for tests and embedding

Both return participants ordered by id and report a missing id on delete
as ErrNotFound.
*/
package store
