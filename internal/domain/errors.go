package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgInvalidItem  = "invalid item"

	// Equipment errors
	ErrMsgInvalidSlot = "invalid slot"

	// Resource errors
	ErrMsgNegativeAmount    = "amount must not be negative"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Merge errors
	ErrMsgMergeSourceMissing = "merge source not found"

	// Profile errors
	ErrMsgProfileNotFound  = "profile not found"
	ErrMsgInvalidProfileID = "invalid profile id"

	// Persistence errors
	ErrMsgPersistFailed = "failed to persist state"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrInvalidItem        = errors.New(ErrMsgInvalidItem)
	ErrInvalidSlot        = errors.New(ErrMsgInvalidSlot)
	ErrNegativeAmount     = errors.New(ErrMsgNegativeAmount)
	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrMergeSourceMissing = errors.New(ErrMsgMergeSourceMissing)
	ErrProfileNotFound    = errors.New(ErrMsgProfileNotFound)
	ErrInvalidProfileID   = errors.New(ErrMsgInvalidProfileID)
	ErrPersistFailed      = errors.New(ErrMsgPersistFailed)
)
