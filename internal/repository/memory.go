package repository

import (
	"context"
	"sync"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// MemoryGateway is an in-memory Gateway used for tests and local mode.
// Stored states are deep-copied on both write and read so the gateway never
// shares memory with the store's canonical state.
type MemoryGateway struct {
	mu     sync.Mutex
	states map[string]domain.ProfileState

	// SaveCount tallies Save invocations; tests use it to assert the
	// once-per-batch persistence contract.
	SaveCount int

	// FailSaves makes Save return ErrPersistFailed when set.
	FailSaves bool
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		states: make(map[string]domain.ProfileState),
	}
}

// Save stores a deep copy of the given state.
func (g *MemoryGateway) Save(ctx context.Context, profileID string, state *domain.ProfileState) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.SaveCount++
	if g.FailSaves {
		return domain.ErrPersistFailed
	}
	g.states[profileID] = state.Clone()
	return nil
}

// Load returns a deep copy of the stored state, or (nil, nil) if absent.
func (g *MemoryGateway) Load(ctx context.Context, profileID string) (*domain.ProfileState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.states[profileID]
	if !ok {
		return nil, nil
	}
	clone := state.Clone()
	return &clone, nil
}

// Delete removes the stored state for a profile.
func (g *MemoryGateway) Delete(ctx context.Context, profileID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.states, profileID)
	return nil
}

// Stored returns a deep copy of what is currently persisted for a profile.
// Test helper.
func (g *MemoryGateway) Stored(profileID string) (domain.ProfileState, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.states[profileID]
	if !ok {
		return domain.ProfileState{}, false
	}
	return state.Clone(), true
}
