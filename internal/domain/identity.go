package domain

import "strings"

// ItemRef is a loose reference to a stored item. Any subset of the identity
// layers may be populated; resolution tries them in priority order:
// primary ID, then acquisition timestamp, then the composite key.
type ItemRef struct {
	ID           string `json:"id,omitempty"`
	AcquiredAt   int64  `json:"acquired_at,omitempty"`
	CompositeKey string `json:"composite_key,omitempty"`
}

// RefOf builds the strongest reference the given item supports.
func RefOf(item Item) ItemRef {
	return ItemRef{
		ID:           item.ID,
		AcquiredAt:   item.AcquiredAt,
		CompositeKey: item.CompositeKey(),
	}
}

// ParseRef interprets a raw identity string from loosely-coordinated callers.
// A string containing the composite separator is treated as a composite key,
// anything else as a primary ID.
func ParseRef(raw string) ItemRef {
	if strings.Contains(raw, CompositeKeySeparator) {
		return ItemRef{CompositeKey: raw}
	}
	return ItemRef{ID: raw}
}

// IsZero reports whether no identity layer is populated.
func (r ItemRef) IsZero() bool {
	return r.ID == "" && r.AcquiredAt == 0 && r.CompositeKey == ""
}
