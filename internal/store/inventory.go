package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
	"github.com/lkacz/PersonalFreedom-sub001/internal/stats"
)

// AddItem clones the given item into the inventory and returns a reference
// to the stored copy. The caller's item is never retained. Missing
// acquisition timestamps are stamped with the store clock so the fallback
// identity layer always works. Structurally empty items are logged and
// ignored, not fatal.
func (s *Store) AddItem(ctx context.Context, item domain.Item) (domain.ItemRef, bool) {
	log := logger.FromContext(ctx)

	if item.IsZero() {
		log.Warn(LogMsgInvalidItemIgnored, "operation", OpAddItem)
		return domain.ItemRef{}, false
	}

	stored := item.Clone()
	if stored.AcquiredAt == 0 {
		stored.AcquiredAt = s.now().UnixMilli()
	}

	s.state.Items = append(s.state.Items, stored)
	s.state.TotalCollected++
	s.enforceCap()
	metrics.MutationsTotal.WithLabelValues(OpAddItem).Inc()

	s.notifyInventoryChanged(ctx)
	s.requestPersist(ctx)
	return domain.RefOf(stored), true
}

// RemoveItem resolves the reference through the identity fallback chain and
// removes at most one matching item. Returns whether a match was removed.
func (s *Store) RemoveItem(ctx context.Context, ref domain.ItemRef) bool {
	idx := findIndex(s.state.Items, ref)
	if idx == -1 {
		return false
	}

	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	metrics.MutationsTotal.WithLabelValues(OpRemoveItem).Inc()

	s.notifyInventoryChanged(ctx)
	s.requestPersist(ctx)
	return true
}

// BulkRemove removes every item the references resolve to, deduplicated per
// call so two references matching the same stored instance cannot
// double-remove. Unresolvable references are skipped. Returns the number of
// items removed.
func (s *Store) BulkRemove(ctx context.Context, refs []domain.ItemRef) int {
	indexes, _ := resolveDistinct(s.state.Items, refs)
	if len(indexes) == 0 {
		return 0
	}

	s.state.Items = removeIndexes(s.state.Items, indexes)
	metrics.MutationsTotal.WithLabelValues(OpBulkRemove).Inc()

	s.notifyInventoryChanged(ctx)
	s.requestPersist(ctx)
	return len(indexes)
}

// Merge atomically removes all source items and appends a clone of the
// result. All-or-nothing: when any source fails to resolve to a distinct
// stored item, the inventory is left untouched and the merge reports
// failure.
func (s *Store) Merge(ctx context.Context, sources []domain.ItemRef, result domain.Item) bool {
	log := logger.FromContext(ctx)

	if len(sources) == 0 || result.IsZero() {
		log.Warn(LogMsgInvalidItemIgnored, "operation", OpMergeItems)
		return false
	}

	indexes, ok := resolveDistinct(s.state.Items, sources)
	if !ok {
		log.Warn(LogMsgMergeSourceUnresolved, "requested", len(sources), "resolved", len(indexes))
		return false
	}

	merged := result.Clone()
	if merged.AcquiredAt == 0 {
		merged.AcquiredAt = s.now().UnixMilli()
	}

	s.state.Items = removeIndexes(s.state.Items, indexes)
	s.state.Items = append(s.state.Items, merged)
	s.state.TotalCollected++
	s.enforceCap()
	metrics.MutationsTotal.WithLabelValues(OpMergeItems).Inc()

	s.notifyInventoryChanged(ctx)
	s.requestPersist(ctx)
	return true
}

// SetCapBonus adjusts the externally granted inventory cap bonus. Shrinking
// the cap evicts oldest entries immediately. Negative bonuses are rejected.
func (s *Store) SetCapBonus(ctx context.Context, bonus int) {
	log := logger.FromContext(ctx)

	if bonus < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpSetCapBonus, "amount", bonus)
		return
	}
	if bonus == s.capBonus {
		return
	}

	s.capBonus = bonus
	metrics.MutationsTotal.WithLabelValues(OpSetCapBonus).Inc()
	if s.enforceCap() {
		s.notifyInventoryChanged(ctx)
		s.requestPersist(ctx)
	}
}

// enforceCap evicts oldest entries while the inventory exceeds the cap.
// Reports whether anything was evicted.
func (s *Store) enforceCap() bool {
	limit := s.InventoryCap()
	evicted := false
	for len(s.state.Items) > limit {
		s.state.Items = s.state.Items[1:]
		metrics.ItemsEvicted.Inc()
		evicted = true
	}
	return evicted
}

func (s *Store) notifyInventoryChanged(ctx context.Context) {
	s.notify(ctx, event.NewInventoryChangedEvent(
		len(s.state.Items),
		s.state.TotalCollected,
		stats.TotalPower(s.state.Items),
	))
}
