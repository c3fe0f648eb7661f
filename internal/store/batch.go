package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
)

// BeginBatch opens a transaction scope. Scopes nest: only the outermost
// EndBatch persists and dispatches. On the 0->1 transition any stale pending
// state is discarded.
func (s *Store) BeginBatch() {
	s.depth++
	if s.depth == 1 {
		s.pending = nil
		s.pendingIdx = nil
		s.persistPending = false
	}
	metrics.BatchDepth.Set(float64(s.depth))
}

// EndBatch closes one transaction scope. When the outermost scope closes it
// performs at most one persistence write, then dispatches the deduplicated
// pending events in first-seen order. Pending state is cleared before
// dispatch so a failing handler can never leave a half-committed scope
// behind. Calling EndBatch with no open batch logs a warning and is
// otherwise a no-op.
func (s *Store) EndBatch(ctx context.Context) {
	log := logger.FromContext(ctx)

	if s.depth == 0 {
		log.Warn(LogMsgUnbalancedEndBatch, "profileID", s.profileID)
		return
	}

	s.depth--
	metrics.BatchDepth.Set(float64(s.depth))
	if s.depth > 0 {
		return
	}

	pending := s.pending
	persist := s.persistPending
	s.pending = nil
	s.pendingIdx = nil
	s.persistPending = false

	if persist {
		s.persist(ctx)
	}
	for _, evt := range pending {
		s.dispatch(ctx, evt)
	}
}

// Batch runs fn inside one transaction scope. Convenience wrapper for
// composite operations; the scope is closed even if fn panics.
func (s *Store) Batch(ctx context.Context, fn func()) {
	s.BeginBatch()
	defer s.EndBatch(ctx)
	fn()
}

// InBatch reports whether a transaction scope is currently open.
func (s *Store) InBatch() bool {
	return s.depth > 0
}
