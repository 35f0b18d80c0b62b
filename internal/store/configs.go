package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// DefaultConfigKey is the scoring configuration used when a caller supplies
// neither an inline config nor a key.
const DefaultConfigKey = "ontario-resume-v1"

// ErrConfigNotFound indicates no scoring configuration exists for a key.
type ErrConfigNotFound struct {
	Key string
}

func (e *ErrConfigNotFound) Error() string {
	return fmt.Sprintf("scoring configuration not found: %s", e.Key)
}

// GetConfig loads the newest version of a scoring configuration by key.
func (s *Store) GetConfig(ctx context.Context, key string) (*types.ScoringConfig, error) {
	var document []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM scoring_configs
		 WHERE config_key = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		key,
	).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrConfigNotFound{Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring config %s: %w", key, err)
	}

	var cfg types.ScoringConfig
	if err := json.Unmarshal(document, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring config %s: %w", key, err)
	}
	return &cfg, nil
}

// SaveConfig stores a new version of a scoring configuration. Versions are
// append-only; GetConfig always serves the newest.
func (s *Store) SaveConfig(ctx context.Context, key string, cfg *types.ScoringConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring config: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO scoring_configs (config_key, version, document)
		 VALUES ($1, $2, $3)`,
		key, cfg.Version, document,
	)
	if err != nil {
		return fmt.Errorf("failed to save scoring config %s: %w", key, err)
	}
	return nil
}

// ListConfigKeys returns the distinct configuration keys with their newest
// version strings.
func (s *Store) ListConfigKeys(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT ON (config_key) config_key, version
		 FROM scoring_configs
		 ORDER BY config_key, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring configs: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]string)
	for rows.Next() {
		var key, version string
		if err := rows.Scan(&key, &version); err != nil {
			return nil, fmt.Errorf("failed to scan scoring config row: %w", err)
		}
		keys[key] = version
	}
	return keys, rows.Err()
}
