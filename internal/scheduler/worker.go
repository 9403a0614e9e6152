package scheduler

import (
	"context"
	"slices"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// Sink consumes expiry notifications. Deliver is called outside the store
// lock, once per fired alarm, in non-decreasing deadline order.
type Sink interface {
	Deliver(ctx context.Context, expiry alarm.Expiry)
}

// Scheduler is the single consumer worker. It repeatedly picks the soonest
// pending alarm, waits until its deadline or until a producer inserts a
// sooner one, and delivers or requeues it.
type Scheduler struct {
	store *Store
	sink  Sink
}

// New wires a worker to the store it consumes and the sink it delivers to.
func New(store *Store, sink Sink) *Scheduler {
	return &Scheduler{
		store: store,
		sink:  sink,
	}
}

// Run executes the scheduling loop until the context is cancelled.
//
// The loop holds the store lock except while blocked in a wait: the wait
// target is decided under the lock, the lock is released, and the worker
// blocks on the wake channel or the deadline timer. After every wake it
// reacquires the lock and re-checks its commitment before acting, which is
// what keeps spurious and stale wakeups harmless.
//
//nolint:cyclop,funlen,gocognit // The state machine reads best as one loop.
func (w *Scheduler) Run(ctx context.Context) error {
	s := w.store

	for {
		s.mu.Lock()

		// Idle: nothing is queued. Publishing the idle target tells Submit
		// that the next insert must signal.
		for len(s.pending) == 0 {
			s.target = idleTarget

			s.mu.Unlock()
			select {
			case <-s.wake:
			case <-ctx.Done():
				return ctx.Err()
			}
			s.mu.Lock()
		}

		// Take the head. The worker owns it exclusively from here until it
		// is delivered, requeued, or taken back by a store operation.
		head := s.pending[0]
		s.pending = slices.Delete(s.pending, 0, 1)
		now := s.clock.Now().Unix()

		if head.Deadline > now {
			waitDeadline := head.Deadline
			s.target = waitDeadline
			s.inflight = head

			expired := false

			// Stay waiting while the commitment is intact: target still
			// names this deadline and no operation took the entry away.
			for s.target == waitDeadline && s.inflight == head {
				delay := time.Duration(waitDeadline-s.clock.Now().Unix()) * time.Second

				s.mu.Unlock()

				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
					expired = true
				case <-s.wake:
					timer.Stop()
				case <-ctx.Done():
					timer.Stop()
					s.mu.Lock()

					if s.inflight == head {
						s.inflight = nil
						s.insertLocked(head)
					}

					s.mu.Unlock()

					return ctx.Err()
				}

				s.mu.Lock()

				if expired {
					break
				}
			}

			if !expired {
				// Preempted: a sooner deadline arrived, or the entry was
				// cancelled, changed or suspended. If the entry is still
				// ours, hand it back to the queue; it is never delivered
				// on this path.
				if s.inflight == head {
					s.inflight = nil
					s.insertLocked(head)
				}

				s.mu.Unlock()

				continue
			}

			if s.inflight != head {
				// The deadline passed, but a store operation took the entry
				// away before the lock was reacquired. It is not ours to
				// deliver anymore.
				s.mu.Unlock()

				continue
			}

			s.inflight = nil
		}

		firedAt := s.clock.Now().Unix()
		s.mu.Unlock()

		// Expired: exactly one notification per fired alarm.
		w.sink.Deliver(ctx, alarm.Expiry{
			ID:               head.ID,
			GroupID:          head.GroupID,
			RequestedSeconds: head.RequestedSeconds,
			Message:          head.Message,
			Deadline:         head.Deadline,
			FiredAt:          firedAt,
		})
	}
}
