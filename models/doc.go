// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddParticipantRequest: name

# Response Types

Types for JSON responses:

  - ListParticipantsResponse: participants
  - AddParticipantResponse: participant, participants
  - GenerateMatchesResponse: run_id, matches, pairs, odd_one_out
  - ErrorResponse: error, message

# Domain Types

  - Participant: id assigned by the store, name (not required unique)
  - MatchResult: name → partner name (or Nobody)
  - Pair: id-keyed view of a single assignment

# Constants

The sentinel partner for the odd-one-out:

	Nobody = "Nobody"
*/
package models
