package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/store"
)

// MockProfileService implements profile.Service for testing
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetState(ctx context.Context, profileID string) (domain.ProfileState, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(domain.ProfileState), args.Error(1)
}

func (m *MockProfileService) AwardSessionRewards(ctx context.Context, profileID, itemName string, coins, xp int64) (store.AwardResult, error) {
	args := m.Called(ctx, profileID, itemName, coins, xp)
	return args.Get(0).(store.AwardResult), args.Error(1)
}

func (m *MockProfileService) AddCoins(ctx context.Context, profileID string, amount int64) (int64, error) {
	args := m.Called(ctx, profileID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileService) SpendCoins(ctx context.Context, profileID string, amount int64) (bool, error) {
	args := m.Called(ctx, profileID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) AddLuck(ctx context.Context, profileID string, amount int) (int, error) {
	args := m.Called(ctx, profileID, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileService) DecayLuck(ctx context.Context, profileID string) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileService) Equip(ctx context.Context, profileID, slot, identity string) (bool, error) {
	args := m.Called(ctx, profileID, slot, identity)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) Unequip(ctx context.Context, profileID, slot string) (*domain.Item, error) {
	args := m.Called(ctx, profileID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockProfileService) SellItems(ctx context.Context, profileID string, identities []string) (store.SellResult, error) {
	args := m.Called(ctx, profileID, identities)
	return args.Get(0).(store.SellResult), args.Error(1)
}

func (m *MockProfileService) MergeItems(ctx context.Context, profileID string, sources []string, resultName string) (bool, error) {
	args := m.Called(ctx, profileID, sources, resultName)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) Reset(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}
