package store

import "github.com/lkacz/PersonalFreedom-sub001/internal/domain"

// findIndex resolves a loose item reference against the inventory.
//
// Resolution runs one full pass per identity layer, in priority order:
// primary ID, then acquisition timestamp, then the name|slot|rarity composite
// key. A higher layer only decides the match when some stored item satisfies
// it; otherwise resolution falls through to the next layer. Returns -1 when
// nothing matches.
func findIndex(items []domain.Item, ref domain.ItemRef) int {
	if ref.ID != "" {
		for i := range items {
			if items[i].ID == ref.ID {
				return i
			}
		}
	}
	if ref.AcquiredAt != 0 {
		for i := range items {
			if items[i].AcquiredAt == ref.AcquiredAt {
				return i
			}
		}
	}
	if ref.CompositeKey != "" {
		for i := range items {
			if items[i].CompositeKey() == ref.CompositeKey {
				return i
			}
		}
	}
	return -1
}

// resolveDistinct resolves a set of references to a deduplicated index set.
// Two references matching the same stored instance count once. The returned
// slice preserves first-resolution order; ok is false when any reference
// failed to resolve to a distinct stored item.
func resolveDistinct(items []domain.Item, refs []domain.ItemRef) (indexes []int, ok bool) {
	seen := make(map[int]struct{}, len(refs))
	ok = true
	for _, ref := range refs {
		idx := findIndex(items, ref)
		if idx == -1 {
			ok = false
			continue
		}
		if _, dup := seen[idx]; dup {
			ok = false
			continue
		}
		seen[idx] = struct{}{}
		indexes = append(indexes, idx)
	}
	return indexes, ok
}

// removeIndexes returns items with the given index set removed, preserving
// insertion order of the survivors.
func removeIndexes(items []domain.Item, indexes []int) []domain.Item {
	drop := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		drop[idx] = struct{}{}
	}
	out := items[:0]
	for i := range items {
		if _, gone := drop[i]; gone {
			continue
		}
		out = append(out, items[i])
	}
	return out
}
