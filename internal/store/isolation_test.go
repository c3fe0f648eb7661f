package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// The ownership boundary: no value passed in or handed out may share mutable
// memory with canonical state.

func TestAddItem_CallerMutationDoesNotLeakIn(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	item := createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40)
	_, ok := s.AddItem(ctx, item)
	require.True(t, ok)

	// Mutate every field of the caller's copy, including nested maps
	item.Name = "Corrupted"
	item.Power = 9999
	item.LuckyOptions["crit"] = 100
	item.LuckyOptions["new"] = 1
	item.Metadata["origin"] = "tampered"

	stored := s.Items()
	require.Len(t, stored, 1)
	assert.Equal(t, "Blade", stored[0].Name)
	assert.Equal(t, 40, stored[0].Power)
	assert.Equal(t, 5, stored[0].LuckyOptions["crit"])
	assert.NotContains(t, stored[0].LuckyOptions, "new")
	assert.Equal(t, "test", stored[0].Metadata["origin"])
}

func TestItems_ReturnedCopyMutationDoesNotLeakBack(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	_, ok := s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	require.True(t, ok)

	got := s.Items()
	got[0].Name = "Mutated"
	got[0].LuckyOptions["crit"] = 777

	fresh := s.Items()
	assert.Equal(t, "Blade", fresh[0].Name)
	assert.Equal(t, 5, fresh[0].LuckyOptions["crit"])
}

func TestEquip_StoredCopyIndependentOfCaller(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	item := createTestItem("Helm", domain.SlotHelmet, domain.RarityEpic, 25)
	require.True(t, s.Equip(ctx, domain.SlotHelmet, item))

	item.Power = -1
	item.LuckyOptions["crit"] = -1

	equipped, ok := s.EquippedItem(domain.SlotHelmet)
	require.True(t, ok)
	assert.Equal(t, 25, equipped.Power)
	assert.Equal(t, 5, equipped.LuckyOptions["crit"])
}

func TestEquippedAndInventoryCopiesAreIndependent(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	item := createTestItem("Helm", domain.SlotHelmet, domain.RarityEpic, 25)
	ref, ok := s.AddItem(ctx, item)
	require.True(t, ok)
	require.True(t, s.EquipByIdentity(ctx, domain.SlotHelmet, ref))

	// Mutating a fetched inventory copy must not affect the equipped copy,
	// and vice versa: the two are reconciled by identity, not memory.
	inv := s.Items()
	inv[0].LuckyOptions["crit"] = 1000

	equipped, ok := s.EquippedItem(domain.SlotHelmet)
	require.True(t, ok)
	assert.Equal(t, 5, equipped.LuckyOptions["crit"])

	equipped.Metadata["origin"] = "tampered"
	freshEquipped, _ := s.EquippedItem(domain.SlotHelmet)
	assert.Equal(t, "test", freshEquipped.Metadata["origin"])
}

func TestUnequip_ReturnedItemIsIndependentCopy(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	require.True(t, s.Equip(ctx, domain.SlotBoots, createTestItem("Boots", domain.SlotBoots, domain.RarityCommon, 5)))

	removed, ok := s.Unequip(ctx, domain.SlotBoots)
	require.True(t, ok)

	// Re-equip and verify mutating the previously returned copy changes nothing
	require.True(t, s.Equip(ctx, domain.SlotBoots, removed))
	removed.LuckyOptions["crit"] = 999

	current, ok := s.EquippedItem(domain.SlotBoots)
	require.True(t, ok)
	assert.Equal(t, 5, current.LuckyOptions["crit"])
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	_, ok := s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	require.True(t, ok)
	s.AddCoins(ctx, 100)

	snap := s.Snapshot()
	snap.Items[0].Name = "Mutated"
	snap.Counters.Coins = 0

	assert.Equal(t, "Blade", s.Items()[0].Name)
	assert.Equal(t, int64(100), s.Counters().Coins)
}

func TestRestore_ClonesOnIngest(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	state := domain.ProfileState{
		Items:    []domain.Item{createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40)},
		Equipped: map[string]domain.Item{domain.SlotWeapon: createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40)},
		Counters: domain.ResourceCounters{Coins: 50},
	}
	s.Restore(ctx, state)

	state.Items[0].Power = -1
	state.Equipped[domain.SlotWeapon] = domain.Item{Name: "Swapped"}
	state.Counters.Coins = -1

	assert.Equal(t, 40, s.Items()[0].Power)
	equipped, _ := s.EquippedItem(domain.SlotWeapon)
	assert.Equal(t, "Blade", equipped.Name)
	assert.Equal(t, int64(50), s.Counters().Coins)
}

func TestAddItem_ZeroItemIgnored(t *testing.T) {
	s, gateway, _ := newTestStore()
	ctx := context.Background()

	_, ok := s.AddItem(ctx, domain.Item{})
	assert.False(t, ok)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, gateway.SaveCount)
}
