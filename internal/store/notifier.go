package store

import (
	"context"

	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/metrics"
)

// notify records a state-change event. Outside a batch it dispatches
// synchronously. Inside a batch it queues the event, deduplicating by event
// type: requeueing a type already pending replaces its payload in place, so
// one batch dispatches at most one event per type, carrying the newest
// payload, in the order types were first seen.
func (s *Store) notify(ctx context.Context, evt event.Event) {
	if s.depth == 0 {
		s.dispatch(ctx, evt)
		return
	}

	metrics.NotificationsQueued.Inc()
	if idx, ok := s.pendingIdx[evt.Type]; ok {
		metrics.NotificationsDeduped.Inc()
		s.pending[idx] = evt
		return
	}
	if s.pendingIdx == nil {
		s.pendingIdx = make(map[event.Type]int)
	}
	s.pendingIdx[evt.Type] = len(s.pending)
	s.pending = append(s.pending, evt)
}

// dispatch publishes one event on the bus. Handler errors and panics are
// logged and contained so one misbehaving subscriber cannot block the others
// or unwind a committing batch.
func (s *Store) dispatch(ctx context.Context, evt event.Event) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgEventHandlerPanicked, "type", evt.Type, "panic", r)
		}
	}()

	metrics.NotificationsDispatched.WithLabelValues(string(evt.Type)).Inc()
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Error(LogMsgEventDispatchFailed, "type", evt.Type, "error", err)
	}
}
