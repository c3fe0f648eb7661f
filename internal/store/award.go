package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/stats"
)

// AwardResult summarizes a composite session-reward grant.
type AwardResult struct {
	ItemAdded bool            `json:"item_added"`
	ItemRef   domain.ItemRef  `json:"item_ref,omitempty"`
	Coins     int64           `json:"coins"`
	TotalXP   int64           `json:"total_xp"`
	Level     int             `json:"level"`
	LeveledUp bool            `json:"leveled_up"`
}

// AwardSessionRewards grants an item, coins and XP as one transaction: one
// persistence write and one deduplicated notification per event type. A zero
// item skips the inventory grant; zero amounts skip their counters.
func (s *Store) AwardSessionRewards(ctx context.Context, item domain.Item, coins, xp int64) AwardResult {
	var result AwardResult

	s.Batch(ctx, func() {
		if !item.IsZero() {
			result.ItemRef, result.ItemAdded = s.AddItem(ctx, item)
		}
		result.Coins = s.AddCoins(ctx, coins)
		result.TotalXP, result.Level, result.LeveledUp = s.AddXP(ctx, xp)
	})

	return result
}

// SellResult summarizes a bulk sell.
type SellResult struct {
	ItemsSold   int   `json:"items_sold"`
	CoinsGained int64 `json:"coins_gained"`
	Balance     int64 `json:"balance"`
}

// SellItems removes every resolvable referenced item and credits the coins
// they fetch, as one transaction. Each sold item is worth its effective
// power divided by SellPowerDivisor, floored at MinSaleValue. References
// that resolve to nothing are skipped, matching BulkRemove semantics.
func (s *Store) SellItems(ctx context.Context, refs []domain.ItemRef) SellResult {
	var result SellResult

	s.Batch(ctx, func() {
		indexes, _ := resolveDistinct(s.state.Items, refs)
		var gained int64
		for _, idx := range indexes {
			value := int64(stats.ItemPower(s.state.Items[idx]) / SellPowerDivisor)
			if value < MinSaleValue {
				value = MinSaleValue
			}
			gained += value
		}

		result.ItemsSold = s.BulkRemove(ctx, refs)
		result.Balance = s.AddCoins(ctx, gained)
		if result.ItemsSold > 0 {
			result.CoinsGained = gained
		}
	})

	return result
}
