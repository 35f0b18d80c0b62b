package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// ErrOrgNotFound indicates no organization context exists for an id.
type ErrOrgNotFound struct {
	ID string
}

func (e *ErrOrgNotFound) Error() string {
	return fmt.Sprintf("organization context not found: %s", e.ID)
}

// GetOrgContext loads the reference data for one police service.
func (s *Store) GetOrgContext(ctx context.Context, id string) (*types.OrgContext, error) {
	var (
		name         string
		jurisdiction string
		programs     []string
		units        []string
		swornMembers int
		leadership   []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT name, jurisdiction, programs, units, sworn_members, leadership
		 FROM org_contexts WHERE id = $1`,
		id,
	).Scan(&name, &jurisdiction, &programs, &units, &swornMembers, &leadership)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrOrgNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load org context %s: %w", id, err)
	}

	orgCtx := &types.OrgContext{
		ID:           id,
		Name:         name,
		Jurisdiction: jurisdiction,
		Programs:     programs,
		Units:        units,
		SwornMembers: swornMembers,
	}
	if len(leadership) > 0 {
		if err := json.Unmarshal(leadership, &orgCtx.Leadership); err != nil {
			return nil, fmt.Errorf("failed to unmarshal leadership for %s: %w", id, err)
		}
	}
	return orgCtx, nil
}

// UpsertOrgContext inserts or replaces the reference data for a service.
// Used by the roster sync command.
func (s *Store) UpsertOrgContext(ctx context.Context, orgCtx *types.OrgContext) error {
	leadership, err := json.Marshal(orgCtx.Leadership)
	if err != nil {
		return fmt.Errorf("failed to marshal leadership: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO org_contexts (id, name, jurisdiction, programs, units, sworn_members, leadership, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   jurisdiction = EXCLUDED.jurisdiction,
		   programs = EXCLUDED.programs,
		   units = EXCLUDED.units,
		   sworn_members = EXCLUDED.sworn_members,
		   leadership = EXCLUDED.leadership,
		   updated_at = NOW()`,
		orgCtx.ID, orgCtx.Name, orgCtx.Jurisdiction, orgCtx.Programs,
		orgCtx.Units, orgCtx.SwornMembers, leadership,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert org context %s: %w", orgCtx.ID, err)
	}
	return nil
}
