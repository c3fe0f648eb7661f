package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
)

func TestBatch_DeduplicatesKeepingNewestPayload(t *testing.T) {
	s, _, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	s.AddCoins(ctx, 20)
	s.EndBatch(ctx)

	coinEvents := rec.ofType(event.CoinsChanged)
	require.Len(t, coinEvents, 1, "exactly one coins_changed notification must fire")

	payload, ok := coinEvents[0].Payload.(event.CoinsChangedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, int64(30), payload.Balance, "payload must carry the balance after both additions")
}

func TestBatch_PersistsExactlyOnce(t *testing.T) {
	s, gateway, _ := newTestStore()
	ctx := context.Background()

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	_, ok := s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	require.True(t, ok)
	s.AddXP(ctx, 50)
	s.SpendCoins(ctx, 5)
	s.EndBatch(ctx)

	assert.Equal(t, 1, gateway.SaveCount)

	stored, found := gateway.Stored(testProfileID)
	require.True(t, found)
	assert.Equal(t, int64(5), stored.Counters.Coins)
	assert.Len(t, stored.Items, 1)
}

func TestBatch_NoMutationNoPersist(t *testing.T) {
	s, gateway, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)

	s.BeginBatch()
	s.EndBatch(ctx)

	assert.Equal(t, 0, gateway.SaveCount)
	assert.Empty(t, rec.events)
}

func TestBatch_NestedScopesAreTransparent(t *testing.T) {
	nested, nestedGateway, nestedBus := newTestStore()
	flat, flatGateway, flatBus := newTestStore()
	ctx := context.Background()
	nestedRec := recordAll(nestedBus)
	flatRec := recordAll(flatBus)

	nested.BeginBatch()
	nested.BeginBatch()
	nested.AddCoins(ctx, 5)
	nested.EndBatch(ctx)
	nested.AddCoins(ctx, 5)
	nested.EndBatch(ctx)

	flat.BeginBatch()
	flat.AddCoins(ctx, 5)
	flat.AddCoins(ctx, 5)
	flat.EndBatch(ctx)

	assert.Equal(t, 1, nestedGateway.SaveCount)
	assert.Equal(t, flatGateway.SaveCount, nestedGateway.SaveCount)

	require.Len(t, nestedRec.ofType(event.CoinsChanged), 1)
	require.Len(t, flatRec.ofType(event.CoinsChanged), 1)

	nestedPayload := nestedRec.ofType(event.CoinsChanged)[0].Payload.(event.CoinsChangedPayloadV1)
	flatPayload := flatRec.ofType(event.CoinsChanged)[0].Payload.(event.CoinsChangedPayloadV1)
	assert.Equal(t, int64(10), nestedPayload.Balance)
	assert.Equal(t, flatPayload.Balance, nestedPayload.Balance)
}

func TestBatch_DispatchOrderIsFirstSeen(t *testing.T) {
	s, _, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	_, ok := s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	require.True(t, ok)
	s.AddCoins(ctx, 10) // re-queues coins_changed; must not move it to the back
	s.EndBatch(ctx)

	require.Len(t, rec.events, 2)
	assert.Equal(t, event.CoinsChanged, rec.events[0].Type)
	assert.Equal(t, event.InventoryChanged, rec.events[1].Type)
}

func TestEndBatch_WithoutBegin_IsNoOp(t *testing.T) {
	s, gateway, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)

	s.EndBatch(ctx)

	assert.False(t, s.InBatch())
	assert.Equal(t, 0, gateway.SaveCount)
	assert.Empty(t, rec.events)

	// Store must remain fully usable afterwards
	s.AddCoins(ctx, 10)
	assert.Equal(t, int64(10), s.Counters().Coins)
	assert.Equal(t, 1, gateway.SaveCount)
}

func TestBatch_HandlerErrorDoesNotBlockLaterEvents(t *testing.T) {
	s, _, bus := newTestStore()
	ctx := context.Background()

	bus.Subscribe(event.CoinsChanged, func(ctx context.Context, evt event.Event) error {
		return errors.New("subscriber failure")
	})
	inventorySeen := false
	bus.Subscribe(event.InventoryChanged, func(ctx context.Context, evt event.Event) error {
		inventorySeen = true
		return nil
	})

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	_, _ = s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	s.EndBatch(ctx)

	assert.True(t, inventorySeen, "later event must dispatch despite earlier handler error")
	assert.False(t, s.InBatch())
}

func TestBatch_HandlerPanicDoesNotBlockLaterEvents(t *testing.T) {
	s, gateway, bus := newTestStore()
	ctx := context.Background()

	bus.Subscribe(event.CoinsChanged, func(ctx context.Context, evt event.Event) error {
		panic("subscriber panic")
	})
	inventorySeen := false
	bus.Subscribe(event.InventoryChanged, func(ctx context.Context, evt event.Event) error {
		inventorySeen = true
		return nil
	})

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	_, _ = s.AddItem(ctx, createTestItem("Blade", domain.SlotWeapon, domain.RarityRare, 40))
	s.EndBatch(ctx)

	assert.True(t, inventorySeen)
	assert.Equal(t, 1, gateway.SaveCount)
	assert.False(t, s.InBatch())

	// Queue must be fully cleared: a fresh mutation dispatches immediately
	s.BeginBatch()
	s.EndBatch(ctx)
	assert.Equal(t, 1, gateway.SaveCount)
}

func TestBatch_PersistFailureDoesNotBlockNotifications(t *testing.T) {
	s, gateway, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)
	gateway.FailSaves = true

	s.BeginBatch()
	s.AddCoins(ctx, 10)
	s.EndBatch(ctx)

	require.Len(t, rec.ofType(event.CoinsChanged), 1)
	// In-memory state stays correct; the next mutation retries the write
	assert.Equal(t, int64(10), s.Counters().Coins)

	gateway.FailSaves = false
	s.AddCoins(ctx, 1)
	_, found := gateway.Stored(testProfileID)
	assert.True(t, found)
}

func TestBatch_OutsideTransactionDispatchesImmediately(t *testing.T) {
	s, gateway, bus := newTestStore()
	ctx := context.Background()
	rec := recordAll(bus)

	s.AddCoins(ctx, 10)
	s.AddCoins(ctx, 20)

	assert.Len(t, rec.ofType(event.CoinsChanged), 2)
	assert.Equal(t, 2, gateway.SaveCount)
}

func TestBatchHelper_ClosesScopeOnPanic(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	require.Panics(t, func() {
		s.Batch(ctx, func() {
			s.AddCoins(ctx, 10)
			panic("caller failure")
		})
	})

	assert.False(t, s.InBatch(), "batch scope must close even when fn panics")
}
