// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/secret-santa/models"
)

// SQLStore keeps participants in the participant table
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ListParticipants returns a snapshot of all participants ordered by id
func (s *SQLStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM participant ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// AddParticipant inserts a participant and returns it with its new id
func (s *SQLStore) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	p := models.Participant{Name: name}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO participant (name)
		VALUES ($1)
		RETURNING id
	`, name).Scan(&p.ID)
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to insert participant: %w", err)
	}

	return p, nil
}

// DeleteParticipant removes a participant by id
func (s *SQLStore) DeleteParticipant(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM participant WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
