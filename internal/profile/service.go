// Package profile exposes the state store to the rest of the application.
//
// Each profile gets one store.Store, created lazily and hydrated from the
// persistence gateway. The store holds no locks of its own; this service is
// the single owner that serializes all access to it, so callers on any
// goroutine see a consistent single-writer protocol.
package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/item"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/repository"
	"github.com/lkacz/PersonalFreedom-sub001/internal/store"
)

// Service defines the profile-facing state operations
type Service interface {
	GetState(ctx context.Context, profileID string) (domain.ProfileState, error)
	AwardSessionRewards(ctx context.Context, profileID, itemName string, coins, xp int64) (store.AwardResult, error)
	AddCoins(ctx context.Context, profileID string, amount int64) (int64, error)
	SpendCoins(ctx context.Context, profileID string, amount int64) (bool, error)
	AddLuck(ctx context.Context, profileID string, amount int) (int, error)
	DecayLuck(ctx context.Context, profileID string) (int, error)
	Equip(ctx context.Context, profileID, slot, identity string) (bool, error)
	Unequip(ctx context.Context, profileID, slot string) (*domain.Item, error)
	SellItems(ctx context.Context, profileID string, identities []string) (store.SellResult, error)
	MergeItems(ctx context.Context, profileID string, sources []string, resultName string) (bool, error)
	Reset(ctx context.Context, profileID string) error
}

type service struct {
	mu       sync.Mutex
	stores   map[string]*store.Store
	gateway  repository.Gateway
	bus      event.Bus
	catalog  item.Catalog
	capBonus int
}

// NewService creates a profile service backed by the given gateway and bus.
// capBonus is added to every profile's base inventory capacity.
func NewService(gateway repository.Gateway, bus event.Bus, catalog item.Catalog, capBonus int) Service {
	return &service{
		stores:   make(map[string]*store.Store),
		gateway:  gateway,
		bus:      bus,
		catalog:  catalog,
		capBonus: capBonus,
	}
}

// getStore returns the store for a profile, hydrating it from the gateway on
// first access. Caller must hold s.mu.
func (s *service) getStore(ctx context.Context, profileID string) (*store.Store, error) {
	if profileID == "" {
		return nil, domain.ErrInvalidProfileID
	}
	if st, ok := s.stores[profileID]; ok {
		return st, nil
	}

	st := store.New(profileID, s.gateway, s.bus)
	state, err := s.gateway.Load(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile state: %w", err)
	}
	if state != nil {
		st.Restore(ctx, *state)
	}
	if s.capBonus > 0 {
		st.SetCapBonus(ctx, s.capBonus)
	}
	s.stores[profileID] = st
	return st, nil
}

func (s *service) GetState(ctx context.Context, profileID string) (domain.ProfileState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return domain.ProfileState{}, err
	}
	return st.Snapshot(), nil
}

func (s *service) AwardSessionRewards(ctx context.Context, profileID, itemName string, coins, xp int64) (store.AwardResult, error) {
	log := logger.FromContext(ctx)

	var reward domain.Item
	if itemName != "" {
		minted, err := s.catalog.Mint(itemName)
		if err != nil {
			log.Warn("Unknown reward item", "itemName", itemName, "error", err)
			return store.AwardResult{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemName)
		}
		reward = minted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return store.AwardResult{}, err
	}
	return st.AwardSessionRewards(ctx, reward, coins, xp), nil
}

func (s *service) AddCoins(ctx context.Context, profileID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return 0, err
	}
	return st.AddCoins(ctx, amount), nil
}

func (s *service) SpendCoins(ctx context.Context, profileID string, amount int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return false, err
	}
	return st.SpendCoins(ctx, amount), nil
}

func (s *service) AddLuck(ctx context.Context, profileID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return 0, err
	}
	return st.AddLuck(ctx, amount), nil
}

func (s *service) DecayLuck(ctx context.Context, profileID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return 0, err
	}
	return st.DecayLuck(ctx), nil
}

func (s *service) Equip(ctx context.Context, profileID, slot, identity string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return false, err
	}
	return st.EquipByIdentity(ctx, slot, domain.ParseRef(identity)), nil
}

func (s *service) Unequip(ctx context.Context, profileID, slot string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return nil, err
	}
	removed, ok := st.Unequip(ctx, slot)
	if !ok {
		return nil, nil
	}
	return &removed, nil
}

func (s *service) SellItems(ctx context.Context, profileID string, identities []string) (store.SellResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return store.SellResult{}, err
	}

	refs := make([]domain.ItemRef, len(identities))
	for i, identity := range identities {
		refs[i] = domain.ParseRef(identity)
	}
	return st.SellItems(ctx, refs), nil
}

func (s *service) MergeItems(ctx context.Context, profileID string, sources []string, resultName string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := s.catalog.Mint(resultName)
	if err != nil {
		log.Warn("Unknown merge result item", "itemName", resultName, "error", err)
		return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, resultName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return false, err
	}

	refs := make([]domain.ItemRef, len(sources))
	for i, identity := range sources {
		refs[i] = domain.ParseRef(identity)
	}
	return st.Merge(ctx, refs, result), nil
}

// Reset wipes a profile's state in memory and at the gateway. Test and admin
// lifecycle only.
func (s *service) Reset(ctx context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.getStore(ctx, profileID)
	if err != nil {
		return err
	}
	st.Reset()
	if err := s.gateway.Delete(ctx, profileID); err != nil {
		return fmt.Errorf("failed to delete persisted state: %w", err)
	}
	return nil
}
