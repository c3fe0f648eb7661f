package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event. It is also the identity used when
// notifications queued inside a batch are deduplicated: for one batch, at
// most one event per Type is dispatched, carrying the newest payload.
type Type string

// Event represents a state-change notification published by the store.
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// State change event types
const (
	CoinsChanged     Type = "state.coins_changed"
	XPChanged        Type = "state.xp_changed"
	LuckChanged      Type = "state.luck_changed"
	InventoryChanged Type = "state.inventory_changed"
	EquipmentChanged Type = "state.equipment_changed"
	LevelUp          Type = "state.level_up"
)

// Typed event payloads for type safety

// CoinsChangedPayloadV1 carries the balance after the mutation.
type CoinsChangedPayloadV1 struct {
	Balance   int64 `json:"balance"`
	Timestamp int64 `json:"timestamp"`
}

// XPChangedPayloadV1 carries the XP total and the level it maps to.
type XPChangedPayloadV1 struct {
	TotalXP   int64 `json:"total_xp"`
	Level     int   `json:"level"`
	Timestamp int64 `json:"timestamp"`
}

// LuckChangedPayloadV1 carries the luck bonus after the mutation.
type LuckChangedPayloadV1 struct {
	Luck      int   `json:"luck"`
	Timestamp int64 `json:"timestamp"`
}

// InventoryChangedPayloadV1 carries inventory summary figures.
type InventoryChangedPayloadV1 struct {
	Count          int   `json:"count"`
	TotalCollected int64 `json:"total_collected"`
	TotalPower     int   `json:"total_power"`
	Timestamp      int64 `json:"timestamp"`
}

// EquipmentChangedPayloadV1 carries the equipped-set summary.
type EquipmentChangedPayloadV1 struct {
	Slots         []string `json:"slots"`
	EquippedPower int      `json:"equipped_power"`
	Timestamp     int64    `json:"timestamp"`
}

// LevelUpPayloadV1 carries the level transition.
type LevelUpPayloadV1 struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewCoinsChangedEvent creates a coins changed event.
func NewCoinsChangedEvent(balance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CoinsChanged,
		Payload: CoinsChangedPayloadV1{
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewXPChangedEvent creates an XP changed event.
func NewXPChangedEvent(totalXP int64, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPChanged,
		Payload: XPChangedPayloadV1{
			TotalXP:   totalXP,
			Level:     level,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLuckChangedEvent creates a luck changed event.
func NewLuckChangedEvent(luck int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LuckChanged,
		Payload: LuckChangedPayloadV1{
			Luck:      luck,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewInventoryChangedEvent creates an inventory changed event.
func NewInventoryChangedEvent(count int, totalCollected int64, totalPower int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryChanged,
		Payload: InventoryChangedPayloadV1{
			Count:          count,
			TotalCollected: totalCollected,
			TotalPower:     totalPower,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewEquipmentChangedEvent creates an equipment changed event.
func NewEquipmentChangedEvent(slots []string, equippedPower int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EquipmentChanged,
		Payload: EquipmentChangedPayloadV1{
			Slots:         slots,
			EquippedPower: equippedPower,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a level up event.
func NewLevelUpEvent(oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not prevent later handlers from running.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
