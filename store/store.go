// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/secret-santa/models"
)

var ErrNotFound = errors.New("participant not found")

// ParticipantStore lists, adds and deletes participants
type ParticipantStore interface {
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	AddParticipant(ctx context.Context, name string) (models.Participant, error)
	DeleteParticipant(ctx context.Context, id int64) error
}
