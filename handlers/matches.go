// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/secret-santa/matcher"
	"github.com/danielhkuo/secret-santa/metrics"
	"github.com/danielhkuo/secret-santa/middleware"
	"github.com/danielhkuo/secret-santa/models"
	"github.com/danielhkuo/secret-santa/store"
)

type MatchHandler struct {
	store store.ParticipantStore
	rng   matcher.Rand
}

// NewMatchHandler creates a handler drawing from rng. rng is shared
// across requests and must be safe for concurrent use.
func NewMatchHandler(st store.ParticipantStore, rng matcher.Rand) *MatchHandler {
	return &MatchHandler{store: st, rng: rng}
}

// Generate handles GET /matches
// Every call is a fresh run; nothing is stored.
func (h *MatchHandler) Generate(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	assignments := matcher.Assign(h.rng, participants)
	runID := uuid.New().String()

	response := models.GenerateMatchesResponse{
		RunID:   runID,
		Matches: matcher.Names(assignments),
		Pairs:   make([]models.Pair, 0, len(assignments)),
	}
	for _, a := range assignments {
		pair := models.Pair{
			GiverID:      a.Giver.ID,
			GiverName:    a.Giver.Name,
			ReceiverName: models.Nobody,
		}
		if a.Receiver != nil {
			receiverID := a.Receiver.ID
			pair.ReceiverID = &receiverID
			pair.ReceiverName = a.Receiver.Name
		}
		response.Pairs = append(response.Pairs, pair)
	}

	metrics.MatchRunsTotal.Inc()
	metrics.MatchParticipants.Observe(float64(len(participants)))
	if odd, ok := matcher.OddOneOut(assignments); ok {
		metrics.OddOneOutTotal.Inc()
		response.OddOneOut = &odd.Name
	}

	slog.Info("matches generated", "run_id", runID, "participants", len(participants))

	middleware.JSONResponse(w, http.StatusOK, response)
}
