// Package stats provides pure derived-stat calculators over profile state.
// Calculators never mutate their input; the store calls them after mutations
// to build notification payloads.
package stats

import (
	"sort"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// ItemPower returns the effective power of a single item: base power plus the
// sum of its lucky option bonuses.
func ItemPower(item domain.Item) int {
	power := item.Power
	for _, bonus := range item.LuckyOptions {
		power += bonus
	}
	return power
}

// TotalPower returns the summed effective power of all inventory items.
func TotalPower(items []domain.Item) int {
	total := 0
	for _, item := range items {
		total += ItemPower(item)
	}
	return total
}

// EquippedPower returns the summed effective power of all equipped items.
func EquippedPower(equipped map[string]domain.Item) int {
	total := 0
	for _, item := range equipped {
		total += ItemPower(item)
	}
	return total
}

// EquippedSlots returns the occupied slot names in stable sorted order.
func EquippedSlots(equipped map[string]domain.Item) []string {
	slots := make([]string, 0, len(equipped))
	for slot := range equipped {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}
