package domain

// Resource counter bounds
const (
	// MaxCoins is the inclusive coin balance ceiling.
	MaxCoins int64 = 2_000_000_000
	// MaxXP is the inclusive total-experience ceiling.
	MaxXP int64 = 2_000_000_000
	// MaxLuck is the inclusive luck bonus ceiling.
	MaxLuck = 10_000
)

// Inventory sizing
const (
	// BaseInventoryCap is the inventory size before any externally granted bonus.
	BaseInventoryCap = 100
)

// CompositeKeySeparator joins name, slot and rarity into the last-resort
// identity key. Kept out of item names by validation at the store edge.
const CompositeKeySeparator = "|"
