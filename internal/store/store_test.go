package store

import (
	"context"
	"sync"
	"time"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/repository"
)

// Shared fixtures for store tests.

const testProfileID = "profile-123"

func newTestStore() (*Store, *repository.MemoryGateway, *event.MemoryBus) {
	gateway := repository.NewMemoryGateway()
	bus := event.NewMemoryBus()
	s := New(testProfileID, gateway, bus)

	// Deterministic clock so timestamp identity is predictable
	var tick int64
	var mu sync.Mutex
	s.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return time.UnixMilli(1_700_000_000_000 + tick)
	}
	return s, gateway, bus
}

func createTestItem(name, slot string, rarity domain.Rarity, power int) domain.Item {
	return domain.Item{
		Name:   name,
		Slot:   slot,
		Rarity: rarity,
		Power:  power,
		LuckyOptions: map[string]int{
			"crit": 5,
		},
		Metadata: map[string]string{
			"origin": "test",
		},
	}
}

// eventRecorder captures every event a bus dispatches, in order.
type eventRecorder struct {
	events []event.Event
}

func recordAll(bus *event.MemoryBus) *eventRecorder {
	rec := &eventRecorder{}
	types := []event.Type{
		event.CoinsChanged,
		event.XPChanged,
		event.LuckChanged,
		event.InventoryChanged,
		event.EquipmentChanged,
		event.LevelUp,
	}
	for _, t := range types {
		bus.Subscribe(t, func(ctx context.Context, evt event.Event) error {
			rec.events = append(rec.events, evt)
			return nil
		})
	}
	return rec
}

func (r *eventRecorder) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, evt := range r.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}
