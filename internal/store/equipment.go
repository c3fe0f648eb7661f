package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
	"github.com/lkacz/PersonalFreedom-sub001/internal/stats"
)

// The equipped map deliberately holds independent copies of "the same" items
// that live in the inventory. Both copies are reconciled only by identity
// matching, never by shared memory; equipping never removes the inventory
// entry and unequipping never deletes it.

// Equip stores an independent clone of the item in the given slot. Unknown
// but non-empty slots are accepted for forward compatibility and logged.
// Returns false only on structurally invalid input.
func (s *Store) Equip(ctx context.Context, slot string, item domain.Item) bool {
	log := logger.FromContext(ctx)

	if slot == "" || item.IsZero() {
		log.Warn(LogMsgInvalidItemIgnored, "operation", OpEquip, "slot", slot)
		return false
	}
	if _, known := domain.KnownSlots[slot]; !known {
		log.Warn(LogMsgUnknownSlot, "slot", slot)
	}

	s.state.Equipped[slot] = item.Clone()
	metrics.MutationsTotal.WithLabelValues(OpEquip).Inc()

	s.notifyEquipmentChanged(ctx)
	s.requestPersist(ctx)
	return true
}

// Unequip removes the slot entry and returns an independent clone of what
// was removed. Returns false when the slot was empty or unknown.
func (s *Store) Unequip(ctx context.Context, slot string) (domain.Item, bool) {
	current, ok := s.state.Equipped[slot]
	if !ok {
		return domain.Item{}, false
	}

	delete(s.state.Equipped, slot)
	metrics.MutationsTotal.WithLabelValues(OpUnequip).Inc()

	s.notifyEquipmentChanged(ctx)
	s.requestPersist(ctx)
	return current.Clone(), true
}

// Swap unequips the current occupant and equips the replacement (when
// non-nil) as one logical step, returning the previous occupant. Passing nil
// just clears the slot.
func (s *Store) Swap(ctx context.Context, slot string, replacement *domain.Item) (domain.Item, bool) {
	log := logger.FromContext(ctx)

	if slot == "" {
		log.Warn(LogMsgInvalidItemIgnored, "operation", OpSwap, "slot", slot)
		return domain.Item{}, false
	}

	previous, hadPrevious := s.state.Equipped[slot]
	if hadPrevious {
		previous = previous.Clone()
		delete(s.state.Equipped, slot)
	}
	if replacement != nil && !replacement.IsZero() {
		if _, known := domain.KnownSlots[slot]; !known {
			log.Warn(LogMsgUnknownSlot, "slot", slot)
		}
		s.state.Equipped[slot] = replacement.Clone()
	}
	metrics.MutationsTotal.WithLabelValues(OpSwap).Inc()

	s.notifyEquipmentChanged(ctx)
	s.requestPersist(ctx)
	return previous, hadPrevious
}

// SetAllEquipment atomically replaces the entire equipped map with
// independent clones of every non-empty entry. Entries with an empty slot or
// zero item are dropped.
func (s *Store) SetAllEquipment(ctx context.Context, mapping map[string]domain.Item) {
	log := logger.FromContext(ctx)

	next := make(map[string]domain.Item, len(mapping))
	for slot, item := range mapping {
		if slot == "" || item.IsZero() {
			continue
		}
		if _, known := domain.KnownSlots[slot]; !known {
			log.Warn(LogMsgUnknownSlot, "slot", slot)
		}
		next[slot] = item.Clone()
	}

	s.state.Equipped = next
	metrics.MutationsTotal.WithLabelValues(OpSetAll).Inc()

	s.notifyEquipmentChanged(ctx)
	s.requestPersist(ctx)
}

// EquipByIdentity resolves a reference against the inventory and equips a
// clone of the match into the given slot.
func (s *Store) EquipByIdentity(ctx context.Context, slot string, ref domain.ItemRef) bool {
	idx := findIndex(s.state.Items, ref)
	if idx == -1 {
		return false
	}
	return s.Equip(ctx, slot, s.state.Items[idx])
}

func (s *Store) notifyEquipmentChanged(ctx context.Context) {
	s.notify(ctx, event.NewEquipmentChangedEvent(
		stats.EquippedSlots(s.state.Equipped),
		stats.EquippedPower(s.state.Equipped),
	))
}
