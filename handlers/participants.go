// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/secret-santa/metrics"
	"github.com/danielhkuo/secret-santa/middleware"
	"github.com/danielhkuo/secret-santa/models"
	"github.com/danielhkuo/secret-santa/store"
)

type ParticipantHandler struct {
	store store.ParticipantStore
}

func NewParticipantHandler(st store.ParticipantStore) *ParticipantHandler {
	return &ParticipantHandler{store: st}
}

// List handles GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListParticipantsResponse{
		Participants: participants,
	})
}

// Add handles POST /participants
// Accepts a JSON body or a form post with a name field
func (h *ParticipantHandler) Add(w http.ResponseWriter, r *http.Request) {
	name, err := parseName(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name = strings.TrimSpace(name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	participant, err := h.store.AddParticipant(r.Context(), name)
	if err != nil {
		slog.Error("failed to add participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add participant")
		return
	}
	metrics.ParticipantChangesTotal.WithLabelValues("add").Inc()

	slog.Info("participant added", "participant_id", participant.ID, "name", participant.Name)

	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddParticipantResponse{
		Participant:  participant,
		Participants: participants,
	})
}

// Delete handles DELETE /participants/{id}
func (h *ParticipantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	err = h.store.DeleteParticipant(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete participant", "participant_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete participant")
		return
	}
	metrics.ParticipantChangesTotal.WithLabelValues("delete").Inc()

	slog.Info("participant deleted", "participant_id", id)

	participants, err := h.store.ListParticipants(r.Context())
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListParticipantsResponse{
		Participants: participants,
	})
}

// parseName reads the name from a form post or a JSON body
func parseName(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return "", err
		}
		return r.PostFormValue("name"), nil
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
		if err := r.ParseMultipartForm(middleware.MaxBodyBytes); err != nil {
			return "", err
		}
		return r.PostFormValue("name"), nil
	}

	var req models.AddParticipantRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		return "", err
	}
	return req.Name, nil
}
