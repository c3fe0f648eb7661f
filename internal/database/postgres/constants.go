package postgres

// Error Messages - Snapshot Operations
const (
	ErrMsgFailedToSaveSnapshot   = "failed to save profile snapshot"
	ErrMsgFailedToLoadSnapshot   = "failed to load profile snapshot"
	ErrMsgFailedToDeleteSnapshot = "failed to delete profile snapshot"
	ErrMsgFailedToEncodeSnapshot = "failed to encode profile snapshot"
	ErrMsgFailedToDecodeSnapshot = "failed to decode profile snapshot"
)
