package scheduler

import (
	"cmp"
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// idleTarget is the sentinel target deadline meaning the worker is not
// committed to any specific wake time.
const idleTarget int64 = 0

var (
	// ErrNotFound is returned when no scheduled alarm carries the requested id.
	ErrNotFound = errors.New("alarm not found")
	// ErrAlreadySuspended is returned when the alarm with the requested id is
	// already parked outside the pending queue.
	ErrAlreadySuspended = errors.New("alarm is already suspended")
	// ErrNotSuspended is returned when reactivation is requested for an alarm
	// that is not suspended.
	ErrNotSuspended = errors.New("alarm is not suspended")
)

// Store is the shared collection of alarms, guarded by a single mutex.
//
// pending is kept sorted by deadline ascending, ties in arrival order. target
// is the deadline the worker is currently blocked on (idleTarget when it is
// not committed to any wake time), and wake is the capacity-one channel that
// plays the condition variable's role: a non-blocking send is a signal, and
// the buffered slot guarantees a signal sent while the worker is between
// "release lock" and "block" is not lost.
type Store struct {
	// clock supplies current time for deadline arithmetic.
	clock Clock

	// mu guards every field below. No read or write of them may happen
	// without it.
	mu sync.Mutex
	// pending is the deadline-ordered queue of scheduled alarms.
	pending []*alarm.Alarm
	// suspended holds parked alarms keyed by id, with their captured remainder.
	suspended map[int64]*parkedAlarm
	// target is the deadline the worker committed to waiting on, or idleTarget.
	target int64
	// inflight is the dequeued entry the worker exclusively owns during its
	// timed wait, nil otherwise. Operations that take it away must also reset
	// target and signal, so the worker re-evaluates instead of delivering it.
	inflight *alarm.Alarm
	// wake interrupts the worker's wait. Capacity one; sends never block.
	wake chan struct{}
}

// parkedAlarm is a suspended entry together with the whole seconds it still
// had to run when it was parked.
type parkedAlarm struct {
	entry            *alarm.Alarm
	remainingSeconds int64
}

// Option configures the store.
type Option func(*Store)

// WithClock overrides the time source, mainly for tests.
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewStore creates an empty store backed by the system clock.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:     SystemClock(),
		suspended: make(map[int64]*parkedAlarm),
		target:    idleTarget,
		wake:      make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit assigns the entry its absolute deadline (now + requested seconds,
// computed once, never again) and inserts it into the pending queue.
// Ownership of the entry transfers to the store; the caller must not retain
// a reference. Returns the assigned deadline.
func (s *Store) Submit(entry *alarm.Alarm) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.Deadline = s.clock.Now().Unix() + entry.RequestedSeconds
	s.insertLocked(entry)

	return entry.Deadline
}

// Cancel removes the first alarm carrying the id, whether it is queued,
// suspended, or currently held by the worker.
func (s *Store) Cancel(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.searchPendingLocked(id); idx >= 0 {
		s.pending = slices.Delete(s.pending, idx, idx+1)

		return nil
	}

	if _, ok := s.suspended[id]; ok {
		delete(s.suspended, id)

		return nil
	}

	if s.inflight != nil && s.inflight.ID == id {
		s.dropInflightLocked()

		return nil
	}

	return ErrNotFound
}

// Change gives the alarm a fresh duration: its deadline becomes now + seconds
// and the entry is re-sorted into position, re-evaluating the wake condition
// exactly as Submit does. Suspended alarms must be reactivated first.
func (s *Store) Change(id, seconds int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suspended[id]; ok {
		return 0, ErrAlreadySuspended
	}

	deadline := s.clock.Now().Unix() + seconds

	if idx := s.searchPendingLocked(id); idx >= 0 {
		entry := s.pending[idx]
		s.pending = slices.Delete(s.pending, idx, idx+1)
		entry.RequestedSeconds = seconds
		entry.Deadline = deadline
		s.insertLocked(entry)

		return deadline, nil
	}

	if s.inflight != nil && s.inflight.ID == id {
		entry := s.inflight
		// Take the entry back from the worker before rescheduling it.
		s.dropInflightLocked()
		entry.RequestedSeconds = seconds
		entry.Deadline = deadline
		s.insertLocked(entry)

		return deadline, nil
	}

	return 0, ErrNotFound
}

// Suspend parks the alarm outside the pending queue, capturing how many whole
// seconds it still had to run. Returns the captured remainder.
func (s *Store) Suspend(id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suspended[id]; ok {
		return 0, ErrAlreadySuspended
	}

	now := s.clock.Now().Unix()

	if idx := s.searchPendingLocked(id); idx >= 0 {
		entry := s.pending[idx]
		s.pending = slices.Delete(s.pending, idx, idx+1)

		return s.parkLocked(entry, now), nil
	}

	if s.inflight != nil && s.inflight.ID == id {
		entry := s.inflight
		s.dropInflightLocked()

		return s.parkLocked(entry, now), nil
	}

	return 0, ErrNotFound
}

// Reactivate returns a suspended alarm to the pending queue with a fresh
// deadline of now + the remainder captured at suspension.
func (s *Store) Reactivate(id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parked, ok := s.suspended[id]
	if !ok {
		return 0, ErrNotSuspended
	}

	delete(s.suspended, id)

	entry := parked.entry
	entry.Deadline = s.clock.Now().Unix() + parked.remainingSeconds
	s.insertLocked(entry)

	return entry.Deadline, nil
}

// Snapshot returns a point-in-time copy of every alarm the store knows about:
// scheduled alarms (including the one the worker is waiting on) ordered by
// deadline, followed by suspended alarms ordered by id.
func (s *Store) Snapshot() []alarm.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().Unix()
	out := make([]alarm.Snapshot, 0, len(s.pending)+len(s.suspended)+1)

	if s.inflight != nil {
		out = append(out, scheduledSnapshot(s.inflight, now))
	}

	for _, entry := range s.pending {
		out = append(out, scheduledSnapshot(entry, now))
	}

	// The in-flight entry usually carries the smallest deadline, but a
	// preempting insert may be racing it, so order explicitly. The sort is
	// stable to keep arrival order on equal deadlines.
	slices.SortStableFunc(out, func(a, b alarm.Snapshot) int {
		return cmp.Compare(a.Alarm.Deadline, b.Alarm.Deadline)
	})

	parked := make([]alarm.Snapshot, 0, len(s.suspended))
	for _, p := range s.suspended {
		parked = append(parked, alarm.Snapshot{
			Alarm:            *p.entry.Clone(),
			Suspended:        true,
			RemainingSeconds: p.remainingSeconds,
		})
	}

	slices.SortFunc(parked, func(a, b alarm.Snapshot) int {
		return cmp.Compare(a.Alarm.ID, b.Alarm.ID)
	})

	return append(out, parked...)
}

// scheduledSnapshot builds the listing view of one queued entry.
func scheduledSnapshot(entry *alarm.Alarm, now int64) alarm.Snapshot {
	remaining := entry.Deadline - now
	if remaining < 0 {
		remaining = 0
	}

	return alarm.Snapshot{
		Alarm:            *entry.Clone(),
		RemainingSeconds: remaining,
	}
}

// insertLocked splices the entry into its deadline-ordered position and
// re-evaluates the wake condition. The caller must hold mu.
//
// Equal deadlines keep arrival order: the entry goes after every occupant
// with the same deadline. The signal is conditional, not unconditional: the
// worker is woken only when it is not committed to any wake time, or when the
// new deadline is strictly sooner than the one it waits on. Any later
// deadline leaves the current wait valid.
func (s *Store) insertLocked(entry *alarm.Alarm) {
	idx := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].Deadline > entry.Deadline
	})
	s.pending = slices.Insert(s.pending, idx, entry)

	if s.target == idleTarget || entry.Deadline < s.target {
		s.target = entry.Deadline
		s.signal()
	}
}

// parkLocked moves the entry into the suspended set, capturing the whole
// seconds it still had to run, and returns that remainder. Entries already
// past due park with a zero remainder. The caller must hold mu.
func (s *Store) parkLocked(entry *alarm.Alarm, now int64) int64 {
	remaining := entry.Deadline - now
	if remaining < 0 {
		remaining = 0
	}

	s.suspended[entry.ID] = &parkedAlarm{
		entry:            entry,
		remainingSeconds: remaining,
	}

	return remaining
}

// dropInflightLocked takes the in-flight entry away from the worker and
// forces it out of its timed wait, so it re-evaluates the queue head instead
// of delivering or requeueing an entry it no longer owns. The caller must
// hold mu.
func (s *Store) dropInflightLocked() {
	s.inflight = nil
	s.target = idleTarget
	s.signal()
}

// searchPendingLocked returns the index of the earliest-deadline pending
// entry carrying the id, or -1. The caller must hold mu.
func (s *Store) searchPendingLocked(id int64) int {
	for i, entry := range s.pending {
		if entry.ID == id {
			return i
		}
	}

	return -1
}

// signal wakes the worker without blocking. The channel has capacity one, so
// repeated signals coalesce and a wakeup sent while the worker is between
// releasing the lock and blocking is never lost.
func (s *Store) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
