package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// manualClock is a hand-driven Clock for store-level tests.
type manualClock struct {
	now time.Time
}

// Now returns the manually set current time.
func (c *manualClock) Now() time.Time {
	return c.now
}

// advance moves the clock forward.
func (c *manualClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// newTestStore returns a store pinned to a fixed epoch second.
func newTestStore() (*Store, *manualClock) {
	clk := &manualClock{now: time.Unix(1_000_000, 0)}

	return NewStore(WithClock(clk)), clk
}

// entry is a shorthand constructor for test alarms.
func entry(id, seconds int64) *alarm.Alarm {
	return &alarm.Alarm{
		ID:               id,
		GroupID:          1,
		RequestedSeconds: seconds,
		Message:          "test",
	}
}

// pendingIDs reads the scheduled alarm ids in queue order.
func pendingIDs(s *Store) []int64 {
	ids := make([]int64, 0)

	for _, snap := range s.Snapshot() {
		if !snap.Suspended {
			ids = append(ids, snap.Alarm.ID)
		}
	}

	return ids
}

// TestSubmit_AssignsAbsoluteDeadline verifies the deadline is computed once
// from the current time, not stored as a relative duration.
func TestSubmit_AssignsAbsoluteDeadline(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore()
	base := clk.Now().Unix()

	deadline := s.Submit(entry(1, 30))
	require.Equal(t, base+30, deadline)

	// Moving the clock must not move an already assigned deadline.
	clk.advance(10 * time.Second)

	snaps := s.Snapshot()
	require.Len(t, snaps, 1)
	require.Equal(t, base+30, snaps[0].Alarm.Deadline)
	require.Equal(t, int64(20), snaps[0].RemainingSeconds)
}

// TestInsert_KeepsDeadlineOrder verifies the queue stays sorted regardless of
// submission order and that equal deadlines keep arrival order.
func TestInsert_KeepsDeadlineOrder(t *testing.T) {
	t.Parallel()

	// Same deadline multiset submitted in three permutations. Arrival order
	// of the tied entries differs per permutation, everything else must not.
	permutations := [][]struct{ id, seconds int64 }{
		{{1, 5}, {2, 3}, {3, 8}, {4, 3}, {5, 3}},
		{{2, 3}, {4, 3}, {5, 3}, {1, 5}, {3, 8}},
		{{3, 8}, {1, 5}, {2, 3}, {4, 3}, {5, 3}},
	}
	want := [][]int64{
		{2, 4, 5, 1, 3},
		{2, 4, 5, 1, 3},
		{2, 4, 5, 1, 3},
	}

	for i, perm := range permutations {
		s, _ := newTestStore()

		for _, p := range perm {
			s.Submit(entry(p.id, p.seconds))
		}

		require.Equal(t, want[i], pendingIDs(s), "permutation %d", i)
	}
}

// TestInsert_WakeConditionIsConditional verifies the crux of the protocol:
// the worker is signaled only when it is idle or when a strictly sooner
// deadline arrives.
func TestInsert_WakeConditionIsConditional(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore()
	base := clk.Now().Unix()

	// Insert into an idle store: target adopts the deadline and a signal is sent.
	s.Submit(entry(1, 100))
	require.Equal(t, base+100, s.target)

	select {
	case <-s.wake:
	default:
		t.Fatal("expected a wakeup after insert into an idle store")
	}

	// A later deadline leaves the current wait valid: no signal.
	s.Submit(entry(2, 200))
	require.Equal(t, base+100, s.target)

	select {
	case <-s.wake:
		t.Fatal("unexpected wakeup for a later deadline")
	default:
	}

	// A strictly sooner deadline invalidates the wait: target moves, signal sent.
	s.Submit(entry(3, 50))
	require.Equal(t, base+50, s.target)

	select {
	case <-s.wake:
	default:
		t.Fatal("expected a wakeup for a sooner deadline")
	}
}

// TestCancel removes queued and suspended alarms and reports unknown ids.
func TestCancel(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()
	s.Submit(entry(1, 10))
	s.Submit(entry(2, 20))

	require.NoError(t, s.Cancel(1))
	require.Equal(t, []int64{2}, pendingIDs(s))

	require.ErrorIs(t, s.Cancel(1), ErrNotFound)

	_, err := s.Suspend(2)
	require.NoError(t, err)
	require.NoError(t, s.Cancel(2))
	require.Empty(t, s.Snapshot())
}

// TestCancel_FirstMatchOnDuplicateIDs verifies that duplicate ids are legal
// and operations act on the earliest-deadline match.
func TestCancel_FirstMatchOnDuplicateIDs(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore()
	base := clk.Now().Unix()

	s.Submit(entry(7, 30))
	s.Submit(entry(7, 10))

	require.NoError(t, s.Cancel(7))

	snaps := s.Snapshot()
	require.Len(t, snaps, 1)
	require.Equal(t, base+30, snaps[0].Alarm.Deadline)
}

// TestChange gives an alarm a fresh deadline and re-sorts it.
func TestChange(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore()
	base := clk.Now().Unix()

	s.Submit(entry(1, 10))
	s.Submit(entry(2, 20))

	// Push alarm 1 behind alarm 2.
	deadline, err := s.Change(1, 30)
	require.NoError(t, err)
	require.Equal(t, base+30, deadline)
	require.Equal(t, []int64{2, 1}, pendingIDs(s))

	// The deadline is recomputed from the current clock.
	clk.advance(5 * time.Second)

	deadline, err = s.Change(2, 40)
	require.NoError(t, err)
	require.Equal(t, base+5+40, deadline)

	_, err = s.Change(99, 10)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Suspend(1)
	require.NoError(t, err)

	_, err = s.Change(1, 10)
	require.ErrorIs(t, err, ErrAlreadySuspended)
}

// TestSuspendReactivate parks an alarm with its remainder and rearms it later.
func TestSuspendReactivate(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore()

	s.Submit(entry(1, 30))
	clk.advance(12 * time.Second)

	remaining, err := s.Suspend(1)
	require.NoError(t, err)
	require.Equal(t, int64(18), remaining)

	snaps := s.Snapshot()
	require.Len(t, snaps, 1)
	require.True(t, snaps[0].Suspended)
	require.Equal(t, int64(18), snaps[0].RemainingSeconds)

	_, err = s.Suspend(1)
	require.ErrorIs(t, err, ErrAlreadySuspended)

	// Time parked does not count against the alarm.
	clk.advance(1000 * time.Second)

	deadline, err := s.Reactivate(1)
	require.NoError(t, err)
	require.Equal(t, clk.Now().Unix()+18, deadline)

	_, err = s.Reactivate(1)
	require.ErrorIs(t, err, ErrNotSuspended)

	_, err = s.Suspend(99)
	require.ErrorIs(t, err, ErrNotFound)
}

// TestSnapshot_OrdersScheduledThenSuspended verifies the listing contract.
func TestSnapshot_OrdersScheduledThenSuspended(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore()

	s.Submit(entry(5, 50))
	s.Submit(entry(3, 10))
	s.Submit(entry(9, 30))

	_, err := s.Suspend(9)
	require.NoError(t, err)

	snaps := s.Snapshot()
	require.Len(t, snaps, 3)
	require.Equal(t, int64(3), snaps[0].Alarm.ID)
	require.Equal(t, int64(5), snaps[1].Alarm.ID)
	require.Equal(t, int64(9), snaps[2].Alarm.ID)
	require.True(t, snaps[2].Suspended)

	// Snapshots are copies: mutating them must not touch the store.
	snaps[0].Alarm.Message = "mutated"
	require.Equal(t, "test", s.Snapshot()[0].Alarm.Message)
}
