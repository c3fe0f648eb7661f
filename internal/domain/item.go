package domain

// Rarity represents the rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// Known equipment slots. Unknown non-empty slots are accepted for forward
// compatibility and logged as warnings at the store edge.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotHelmet    = "helmet"
	SlotBoots     = "boots"
	SlotAccessory = "accessory"
)

// KnownSlots is the set of slot names the application ships with.
var KnownSlots = map[string]struct{}{
	SlotWeapon:    {},
	SlotArmor:     {},
	SlotHelmet:    {},
	SlotBoots:     {},
	SlotAccessory: {},
}

// Item represents one piece of equipment or collectible.
//
// Identity is layered: ID is the primary key when present, AcquiredAt (unix
// milliseconds) is the fallback, and Name+Slot+Rarity forms a last-resort
// composite key. Items are plain value objects - an Item never references
// another Item or any ledger internals.
type Item struct {
	ID           string            `json:"id,omitempty"`
	Name         string            `json:"name"`
	Slot         string            `json:"slot"`
	Rarity       Rarity            `json:"rarity"`
	Power        int               `json:"power"`
	AcquiredAt   int64             `json:"acquired_at,omitempty"`
	LuckyOptions map[string]int    `json:"lucky_options,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Clone returns a structurally independent deep copy of the item, including
// nested maps. A zero Item clones to a zero Item.
func (i Item) Clone() Item {
	out := i
	if i.LuckyOptions != nil {
		out.LuckyOptions = make(map[string]int, len(i.LuckyOptions))
		for k, v := range i.LuckyOptions {
			out.LuckyOptions[k] = v
		}
	}
	if i.Metadata != nil {
		out.Metadata = make(map[string]string, len(i.Metadata))
		for k, v := range i.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// IsZero reports whether the item carries no identifying data at all.
func (i Item) IsZero() bool {
	return i.ID == "" && i.Name == "" && i.Slot == "" && i.Rarity == "" &&
		i.Power == 0 && i.AcquiredAt == 0 &&
		len(i.LuckyOptions) == 0 && len(i.Metadata) == 0
}

// CompositeKey returns the name|slot|rarity last-resort identity key.
func (i Item) CompositeKey() string {
	return i.Name + CompositeKeySeparator + i.Slot + CompositeKeySeparator + string(i.Rarity)
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for n, it := range items {
		out[n] = it.Clone()
	}
	return out
}

// CloneEquipped deep-copies a slot->item map.
func CloneEquipped(equipped map[string]Item) map[string]Item {
	if equipped == nil {
		return nil
	}
	out := make(map[string]Item, len(equipped))
	for slot, it := range equipped {
		out[slot] = it.Clone()
	}
	return out
}
