// Package store implements the mutation-controlled core for one profile's
// progression state: inventory, equipped items and bounded resource counters.
//
// Every value crossing the store's API edge is deep-copied in both
// directions, so no caller can alias canonical state. All mutation methods
// are synchronous and intended for a single logical writer; the store holds
// no internal locks. Callers that need cross-goroutine access must serialize
// through one owner (see profile.Service).
package store

import (
	"context"
	"time"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
	"github.com/lkacz/PersonalFreedom-sub001/internal/repository"
)

// Store owns the canonical state of a single profile.
type Store struct {
	profileID string
	state     domain.ProfileState
	capBonus  int

	gateway repository.Gateway
	bus     event.Bus
	now     func() time.Time // injectable for tests

	// batch state, managed by batch.go
	depth          int
	pending        []event.Event
	pendingIdx     map[event.Type]int
	persistPending bool
}

// New creates a store for the given profile with empty state.
func New(profileID string, gateway repository.Gateway, bus event.Bus) *Store {
	return &Store{
		profileID: profileID,
		state: domain.ProfileState{
			Equipped: make(map[string]domain.Item),
		},
		gateway: gateway,
		bus:     bus,
		now:     time.Now,
	}
}

// ProfileID returns the profile this store owns state for.
func (s *Store) ProfileID() string {
	return s.profileID
}

// Restore replaces the canonical state with an independent copy of the given
// state. Used at startup to load a persisted blob; emits no events and does
// not write back through the gateway.
func (s *Store) Restore(ctx context.Context, state domain.ProfileState) {
	log := logger.FromContext(ctx)

	s.state = state.Clone()
	if s.state.Equipped == nil {
		s.state.Equipped = make(map[string]domain.Item)
	}
	metrics.MutationsTotal.WithLabelValues(OpRestore).Inc()
	log.Info("Profile state restored", "profileID", s.profileID,
		"items", len(s.state.Items), "coins", s.state.Counters.Coins)
}

// Snapshot returns an independent deep copy of the whole canonical state.
func (s *Store) Snapshot() domain.ProfileState {
	return s.state.Clone()
}

// Reset clears all state. Test-harness lifecycle only; emits no events.
func (s *Store) Reset() {
	s.state = domain.ProfileState{Equipped: make(map[string]domain.Item)}
	s.depth = 0
	s.pending = nil
	s.pendingIdx = nil
	s.persistPending = false
	metrics.MutationsTotal.WithLabelValues(OpReset).Inc()
}

// ============================================================================
// Read API - every returned value is an independent copy
// ============================================================================

// Items returns a deep copy of the ordered inventory.
func (s *Store) Items() []domain.Item {
	return domain.CloneItems(s.state.Items)
}

// LatestItem returns a copy of the most recently added item.
func (s *Store) LatestItem() (domain.Item, bool) {
	if len(s.state.Items) == 0 {
		return domain.Item{}, false
	}
	return s.state.Items[len(s.state.Items)-1].Clone(), true
}

// Equipped returns a deep copy of the slot->item map.
func (s *Store) Equipped() map[string]domain.Item {
	out := domain.CloneEquipped(s.state.Equipped)
	if out == nil {
		out = make(map[string]domain.Item)
	}
	return out
}

// EquippedItem returns a copy of the item equipped in the given slot.
func (s *Store) EquippedItem(slot string) (domain.Item, bool) {
	item, ok := s.state.Equipped[slot]
	if !ok {
		return domain.Item{}, false
	}
	return item.Clone(), true
}

// Counters returns the current resource counters.
func (s *Store) Counters() domain.ResourceCounters {
	return s.state.Counters
}

// TotalCollected returns the lifetime count of items ever added.
func (s *Store) TotalCollected() int64 {
	return s.state.TotalCollected
}

// Level returns the level the current XP total maps to.
func (s *Store) Level() int {
	return LevelForXP(s.state.Counters.TotalXP)
}

// InventoryCap returns the current effective inventory size limit.
func (s *Store) InventoryCap() int {
	return domain.BaseInventoryCap + s.capBonus
}

// ============================================================================
// Persistence plumbing
// ============================================================================

// requestPersist marks the canonical state dirty. Outside a batch the write
// happens immediately; inside, it is deferred to the outermost EndBatch.
func (s *Store) requestPersist(ctx context.Context) {
	if s.depth > 0 {
		s.persistPending = true
		return
	}
	s.persist(ctx)
}

// persist invokes the gateway once. Gateway failures are logged and swallowed:
// the in-memory state stays correct and the next mutation retries the write.
func (s *Store) persist(ctx context.Context) {
	log := logger.FromContext(ctx)

	metrics.PersistenceWrites.Inc()
	if err := s.gateway.Save(ctx, s.profileID, &s.state); err != nil {
		metrics.PersistenceFailures.Inc()
		log.Error(LogMsgPersistFailed, "error", err, "profileID", s.profileID)
	}
}
