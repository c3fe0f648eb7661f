package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
)

// All resource operations are total over their documented domain: invalid
// input is rejected locally with a logged warning and an unchanged result,
// never an error return or panic.

// AddCoins adds to the coin balance, clamping at the ceiling. Negative
// amounts are rejected and the current balance returned unchanged.
func (s *Store) AddCoins(ctx context.Context, amount int64) int64 {
	log := logger.FromContext(ctx)

	if amount < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpAddCoins, "amount", amount)
		return s.state.Counters.Coins
	}
	if amount == 0 {
		return s.state.Counters.Coins
	}

	s.state.Counters.Coins = saturatingAddInt64(s.state.Counters.Coins, amount, domain.MaxCoins)
	metrics.MutationsTotal.WithLabelValues(OpAddCoins).Inc()

	s.notify(ctx, event.NewCoinsChangedEvent(s.state.Counters.Coins))
	s.requestPersist(ctx)
	return s.state.Counters.Coins
}

// SpendCoins deducts the amount atomically. It succeeds iff the balance
// covers the amount; spending zero always succeeds without touching state.
// Negative amounts are rejected.
func (s *Store) SpendCoins(ctx context.Context, amount int64) bool {
	log := logger.FromContext(ctx)

	if amount < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpSpendCoins, "amount", amount)
		return false
	}
	if amount == 0 {
		return true
	}
	if s.state.Counters.Coins < amount {
		return false
	}

	s.state.Counters.Coins -= amount
	metrics.MutationsTotal.WithLabelValues(OpSpendCoins).Inc()

	s.notify(ctx, event.NewCoinsChangedEvent(s.state.Counters.Coins))
	s.requestPersist(ctx)
	return true
}

// AddXP grants experience, clamping the total at the ceiling, and reports
// the resulting total, the level it maps to and whether the level strictly
// increased. Negative amounts are rejected and the current state reported.
func (s *Store) AddXP(ctx context.Context, amount int64) (newTotal int64, newLevel int, leveledUp bool) {
	log := logger.FromContext(ctx)

	oldLevel := LevelForXP(s.state.Counters.TotalXP)
	if amount < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpAddXP, "amount", amount)
		return s.state.Counters.TotalXP, oldLevel, false
	}
	if amount == 0 {
		return s.state.Counters.TotalXP, oldLevel, false
	}

	s.state.Counters.TotalXP = saturatingAddInt64(s.state.Counters.TotalXP, amount, domain.MaxXP)
	metrics.MutationsTotal.WithLabelValues(OpAddXP).Inc()

	newTotal = s.state.Counters.TotalXP
	newLevel = LevelForXP(newTotal)
	leveledUp = newLevel > oldLevel

	s.notify(ctx, event.NewXPChangedEvent(newTotal, newLevel))
	if leveledUp {
		s.notify(ctx, event.NewLevelUpEvent(oldLevel, newLevel))
	}
	s.requestPersist(ctx)
	return newTotal, newLevel, leveledUp
}

// AddLuck grants luck bonus, clamped to the cap. Negative amounts are
// rejected and the current value returned unchanged.
func (s *Store) AddLuck(ctx context.Context, amount int) int {
	log := logger.FromContext(ctx)

	if amount < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpAddLuck, "amount", amount)
		return s.state.Counters.Luck
	}
	if amount == 0 {
		return s.state.Counters.Luck
	}

	s.state.Counters.Luck = saturatingAddInt(s.state.Counters.Luck, amount, domain.MaxLuck)
	metrics.MutationsTotal.WithLabelValues(OpAddLuck).Inc()

	s.notify(ctx, event.NewLuckChangedEvent(s.state.Counters.Luck))
	s.requestPersist(ctx)
	return s.state.Counters.Luck
}

// DecayLuck reduces the luck bonus by one step. Always succeeds, even at 0.
func (s *Store) DecayLuck(ctx context.Context) int {
	return s.DecayLuckBy(ctx, 1)
}

// DecayLuckBy reduces the luck bonus by the given number of steps, flooring
// at 0. Negative amounts are rejected.
func (s *Store) DecayLuckBy(ctx context.Context, amount int) int {
	log := logger.FromContext(ctx)

	if amount < 0 {
		log.Warn(LogMsgNegativeAmount, "operation", OpDecayLuck, "amount", amount)
		return s.state.Counters.Luck
	}
	if amount == 0 || s.state.Counters.Luck == 0 {
		return s.state.Counters.Luck
	}

	s.state.Counters.Luck = clampInt(s.state.Counters.Luck-amount, 0, domain.MaxLuck)
	metrics.MutationsTotal.WithLabelValues(OpDecayLuck).Inc()

	s.notify(ctx, event.NewLuckChangedEvent(s.state.Counters.Luck))
	s.requestPersist(ctx)
	return s.state.Counters.Luck
}

// saturatingAddInt64 adds a non-negative amount to v, capping at hi. The sum
// is never formed when it would exceed hi, so it cannot wrap.
func saturatingAddInt64(v, amount, hi int64) int64 {
	if amount > hi-v {
		return hi
	}
	return v + amount
}

func saturatingAddInt(v, amount, hi int) int {
	if amount > hi-v {
		return hi
	}
	return v + amount
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
