package server

import (
	"context"
	"fmt"

	domain "github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	"github.com/oshokin/alarm-scheduler/internal/logger"
	core "github.com/oshokin/alarm-scheduler/internal/scheduler"
)

// service encapsulates the scheduling business logic behind the gRPC
// transport. It is unexported to keep the transport decoupled from the
// implementation.
type service struct {
	// store holds the deadline-ordered alarm queue.
	store *core.Store
	// hub fans expiry notifications out to stream subscribers.
	hub *hub
	// maxMessageBytes bounds the accepted message payload; configuration may
	// tighten the domain default but never loosen it.
	maxMessageBytes int
}

// newService creates a service backed by the provided store and hub.
func newService(store *core.Store, h *hub, maxMessageBytes int) *service {
	if maxMessageBytes <= 0 || maxMessageBytes > domain.MaxMessageBytes {
		maxMessageBytes = domain.MaxMessageBytes
	}

	return &service{
		store:           store,
		hub:             h,
		maxMessageBytes: maxMessageBytes,
	}
}

// Submit validates a submission and schedules it, returning the absolute
// deadline assigned to the alarm. Rejected submissions never construct a
// queue entry.
func (s *service) Submit(ctx context.Context, actor *domain.Actor, sub domain.Submission) (int64, error) {
	if err := sub.Validate(); err != nil {
		return 0, fmt.Errorf("validate submission: %w", err)
	}

	if len(sub.Message) > s.maxMessageBytes {
		return 0, domain.ErrMessageTooLong
	}

	deadline := s.store.Submit(&domain.Alarm{
		ID:               sub.ID,
		GroupID:          sub.GroupID,
		RequestedSeconds: sub.RequestedSeconds,
		Message:          sub.Message,
	})

	logger.InfoKV(ctx, "Alarm scheduled",
		"alarm_id", sub.ID,
		"group_id", sub.GroupID,
		"requested_seconds", sub.RequestedSeconds,
		"deadline", deadline,
		"actor", actor)

	return deadline, nil
}

// Cancel removes a scheduled or suspended alarm.
func (s *service) Cancel(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := s.store.Cancel(id); err != nil {
		return fmt.Errorf("cancel alarm %d: %w", id, err)
	}

	logger.InfoKV(ctx, "Alarm cancelled", "alarm_id", id, "actor", actor)

	return nil
}

// Change gives a scheduled alarm a fresh duration measured from now and
// returns the recomputed deadline.
func (s *service) Change(ctx context.Context, actor *domain.Actor, id, seconds int64) (int64, error) {
	if seconds < 0 {
		return 0, domain.ErrNegativeSeconds
	}

	deadline, err := s.store.Change(id, seconds)
	if err != nil {
		return 0, fmt.Errorf("change alarm %d: %w", id, err)
	}

	logger.InfoKV(ctx, "Alarm rescheduled",
		"alarm_id", id,
		"requested_seconds", seconds,
		"deadline", deadline,
		"actor", actor)

	return deadline, nil
}

// Suspend parks an alarm outside the pending queue and returns the remaining
// whole seconds captured at suspension time.
func (s *service) Suspend(ctx context.Context, actor *domain.Actor, id int64) (int64, error) {
	remaining, err := s.store.Suspend(id)
	if err != nil {
		return 0, fmt.Errorf("suspend alarm %d: %w", id, err)
	}

	logger.InfoKV(ctx, "Alarm suspended", "alarm_id", id, "remaining_seconds", remaining, "actor", actor)

	return remaining, nil
}

// Reactivate rearms a suspended alarm and returns its new deadline.
func (s *service) Reactivate(ctx context.Context, actor *domain.Actor, id int64) (int64, error) {
	deadline, err := s.store.Reactivate(id)
	if err != nil {
		return 0, fmt.Errorf("reactivate alarm %d: %w", id, err)
	}

	logger.InfoKV(ctx, "Alarm reactivated", "alarm_id", id, "deadline", deadline, "actor", actor)

	return deadline, nil
}

// List returns a point-in-time view of every alarm the scheduler holds.
func (s *service) List(ctx context.Context) []domain.Snapshot {
	snapshots := s.store.Snapshot()

	logger.DebugKV(ctx, "Alarm list requested", "count", len(snapshots))

	return snapshots
}

// Subscribe registers a listener for expiry notifications in the given group
// (zero matches every group). The returned release function must be called
// when the listener goes away.
func (s *service) Subscribe(groupID int64) (<-chan domain.Expiry, func()) {
	return s.hub.Subscribe(groupID)
}
