// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package matcher

import (
	"github.com/danielhkuo/secret-santa/models"
)

// Rand is a uniform generator over [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Assignment pairs a giver with a receiver. Receiver is nil for the
// odd-one-out.
type Assignment struct {
	Giver    models.Participant
	Receiver *models.Participant
}

// GenerateMatches pairs participants and returns the name-keyed result.
func GenerateMatches(rng Rand, participants []models.Participant) models.MatchResult {
	return Names(Assign(rng, participants))
}

// Assign runs one matching round over the snapshot. The returned
// assignments follow the input order.
func Assign(rng Rand, participants []models.Participant) []Assignment {
	n := len(participants)
	if n == 0 {
		return []Assignment{}
	}

	used := make([]bool, n)
	usedCount := 0
	target := make([]int, n)
	assigned := make([]int, 0, n)

	oddOneOut := -1
	if n%2 == 1 {
		oddOneOut = rng.IntN(n)
		target[oddOneOut] = -1
	}

	for i := 0; i < n; i++ {
		if i == oddOneOut {
			continue
		}

		// Only i itself is left: take over an earlier receiver.
		if n-usedCount == 1 && !used[i] {
			j := assigned[rng.IntN(len(assigned))]
			target[i] = target[j]
			target[j] = i
			used[i] = true
			usedCount++
			assigned = append(assigned, i)
			continue
		}

		match := rng.IntN(n)
		for match == i || used[match] {
			match = rng.IntN(n)
		}
		used[match] = true
		usedCount++
		target[i] = match
		assigned = append(assigned, i)
	}

	result := make([]Assignment, n)
	for i, p := range participants {
		result[i].Giver = p
		if t := target[i]; t >= 0 {
			receiver := participants[t]
			result[i].Receiver = &receiver
		}
	}
	return result
}

// Names projects assignments to a MatchResult. The odd-one-out is
// written first, so a giver sharing its name overwrites the entry.
func Names(assignments []Assignment) models.MatchResult {
	matches := make(models.MatchResult, len(assignments))
	for _, a := range assignments {
		if a.Receiver == nil {
			matches[a.Giver.Name] = models.Nobody
		}
	}
	for _, a := range assignments {
		if a.Receiver != nil {
			matches[a.Giver.Name] = a.Receiver.Name
		}
	}
	return matches
}

// OddOneOut returns the participant mapped to Nobody, if any.
func OddOneOut(assignments []Assignment) (models.Participant, bool) {
	for _, a := range assignments {
		if a.Receiver == nil {
			return a.Giver, true
		}
	}
	return models.Participant{}, false
}
