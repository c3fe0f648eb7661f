package store

// Operation labels for mutation metrics
const (
	OpAddItem     = "add_item"
	OpRemoveItem  = "remove_item"
	OpBulkRemove  = "bulk_remove"
	OpMergeItems  = "merge_items"
	OpEquip       = "equip"
	OpUnequip     = "unequip"
	OpSwap        = "swap"
	OpSetAll      = "set_all_equipment"
	OpAddCoins    = "add_coins"
	OpSpendCoins  = "spend_coins"
	OpAddXP       = "add_xp"
	OpAddLuck     = "add_luck"
	OpDecayLuck   = "decay_luck"
	OpSetCapBonus = "set_cap_bonus"
	OpRestore     = "restore"
	OpReset       = "reset"
)

// Level curve parameters. XP required for level N is
// LevelBaseXP * N^LevelExponent; totals are cumulative.
const (
	LevelBaseXP       = 100
	LevelExponent     = 1.5
	MaxIterationLevel = 1000
)

// Sell pricing
const (
	// SellPowerDivisor converts effective item power into coins on a sale.
	SellPowerDivisor = 2
	// MinSaleValue is the floor a single sold item always fetches.
	MinSaleValue = 1
)

// Log message constants
const (
	LogMsgInvalidItemIgnored    = "Ignoring structurally invalid item"
	LogMsgUnknownSlot           = "Equipping into unknown slot"
	LogMsgNegativeAmount        = "Rejecting negative amount"
	LogMsgUnbalancedEndBatch    = "EndBatch called with no open batch"
	LogMsgPersistFailed         = "Persistence gateway failed, state retained in memory"
	LogMsgEventDispatchFailed   = "Event dispatch failed"
	LogMsgEventHandlerPanicked  = "Event handler panicked during dispatch"
	LogMsgMergeSourceUnresolved = "Merge aborted, source item unresolved"
)
