package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// EvaluationRecord is a persisted evaluation outcome.
type EvaluationRecord struct {
	ID        uuid.UUID               `json:"id"`
	ConfigKey string                  `json:"configKey"`
	Result    *types.EvaluationResult `json:"result"`
	CreatedAt time.Time               `json:"createdAt"`
}

// ErrEvaluationNotFound indicates no evaluation record exists for an id.
type ErrEvaluationNotFound struct {
	ID uuid.UUID
}

func (e *ErrEvaluationNotFound) Error() string {
	return fmt.Sprintf("evaluation not found: %s", e.ID)
}

// SaveEvaluation persists an evaluation result and returns its record id.
func (s *Store) SaveEvaluation(ctx context.Context, configKey string, result *types.EvaluationResult) (uuid.UUID, error) {
	document, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO evaluations (config_key, overall_percent, level, disqualified, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		configKey, result.OverallPercent, result.Label, result.Disqualified, document,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// GetEvaluation loads one persisted evaluation by id.
func (s *Store) GetEvaluation(ctx context.Context, id uuid.UUID) (*EvaluationRecord, error) {
	record := &EvaluationRecord{ID: id}
	var document []byte
	err := s.pool.QueryRow(ctx,
		`SELECT config_key, result, created_at FROM evaluations WHERE id = $1`,
		id,
	).Scan(&record.ConfigKey, &document, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrEvaluationNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluation %s: %w", id, err)
	}

	if err := json.Unmarshal(document, &record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation %s: %w", id, err)
	}
	return record, nil
}

// ListEvaluations returns recent evaluation records, newest first.
func (s *Store) ListEvaluations(ctx context.Context, limit, offset int) ([]EvaluationRecord, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, config_key, result, created_at
		 FROM evaluations
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var record EvaluationRecord
		var document []byte
		if err := rows.Scan(&record.ID, &record.ConfigKey, &document, &record.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan evaluation row: %w", err)
		}
		if err := json.Unmarshal(document, &record.Result); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal evaluation %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	return records, total, rows.Err()
}
