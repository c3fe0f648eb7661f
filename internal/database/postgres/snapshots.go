package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// SnapshotRepository persists profile state snapshots to PostgreSQL
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save upserts the full state document for a profile
func (r *SnapshotRepository) Save(ctx context.Context, profileID string, state *domain.ProfileState) error {
	if profileID == "" {
		return domain.ErrInvalidProfileID
	}
	if state == nil {
		return fmt.Errorf("%s: nil state", ErrMsgFailedToSaveSnapshot)
	}

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeSnapshot, err)
	}

	query := `
		INSERT INTO profile_snapshots (profile_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (profile_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, profileID, doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSnapshot, err)
	}
	return nil
}

// Load fetches the state document for a profile. A profile with no snapshot
// returns (nil, nil).
func (r *SnapshotRepository) Load(ctx context.Context, profileID string) (*domain.ProfileState, error) {
	if profileID == "" {
		return nil, domain.ErrInvalidProfileID
	}

	query := `SELECT state FROM profile_snapshots WHERE profile_id = $1`

	var doc []byte
	err := r.db.QueryRow(ctx, query, profileID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshot, err)
	}

	var state domain.ProfileState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeSnapshot, err)
	}
	return &state, nil
}

// Delete removes a profile's snapshot. Deleting a missing snapshot is not an error.
func (r *SnapshotRepository) Delete(ctx context.Context, profileID string) error {
	if profileID == "" {
		return domain.ErrInvalidProfileID
	}

	query := `DELETE FROM profile_snapshots WHERE profile_id = $1`
	if _, err := r.db.Exec(ctx, query, profileID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSnapshot, err)
	}
	return nil
}
