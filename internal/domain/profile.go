package domain

// ResourceCounters holds the bounded numeric counters of a profile.
//
// Invariants: Coins and TotalXP stay within [0, 2e9]; TotalXP only decreases
// through an explicit reset; Luck stays within [0, MaxLuck] and only moves
// through explicit grants and decay.
type ResourceCounters struct {
	Coins   int64 `json:"coins"`
	TotalXP int64 `json:"total_xp"`
	Luck    int   `json:"luck"`
}

// ProfileState is the canonical persisted shape of one profile: the ordered
// inventory, the equipped map, the counters and the lifetime collection tally.
// It is the unit the persistence gateway serializes.
type ProfileState struct {
	Items          []Item           `json:"items"`
	Equipped       map[string]Item  `json:"equipped"`
	Counters       ResourceCounters `json:"counters"`
	TotalCollected int64            `json:"total_collected"`
}

// Clone returns a structurally independent deep copy of the whole state.
func (p ProfileState) Clone() ProfileState {
	return ProfileState{
		Items:          CloneItems(p.Items),
		Equipped:       CloneEquipped(p.Equipped),
		Counters:       p.Counters,
		TotalCollected: p.TotalCollected,
	}
}
