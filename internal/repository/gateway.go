package repository

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// Gateway persists the canonical profile state.
//
// Save receives a reference to the canonical state purely to serialize it and
// must not mutate it. It must be safe to call repeatedly with the same state.
// Load returns (nil, nil) when no state has been persisted for the profile.
type Gateway interface {
	Save(ctx context.Context, profileID string, state *domain.ProfileState) error
	Load(ctx context.Context, profileID string) (*domain.ProfileState, error)
	Delete(ctx context.Context, profileID string) error
}
