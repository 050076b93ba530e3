// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package matcher implements the Secret Santa pairing.

# Algorithm

Given an ordered snapshot of participants of size N:

  - If N is odd, one index is drawn uniformly in [0, N) as the odd-one-out
    and mapped to models.Nobody. It is skipped as a giver but stays
    eligible as a receiver.
  - Every other index i draws a uniform index in [0, N) until the draw is
    neither i nor already used, marks it used and records the pair.

When the only unused receiver left is the giver itself (possible for even
N), the giver swaps receivers with a random earlier giver, so every run
terminates.

# Usage

	rng := matcher.NewLockedRand(0)
	result := matcher.GenerateMatches(rng, participants)

Assign returns the id-keyed assignments; Names projects them to the
name-keyed MatchResult. Both are pure apart from the injected generator.
*/
package matcher
