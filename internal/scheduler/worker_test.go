package scheduler

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-scheduler/internal/domain/alarm"
)

// captureSink records delivered expiries for assertions.
type captureSink struct {
	mu       sync.Mutex
	expiries []alarm.Expiry
}

// Deliver appends the expiry to the recorded sequence.
func (c *captureSink) Deliver(_ context.Context, expiry alarm.Expiry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expiries = append(c.expiries, expiry)
}

// delivered returns a copy of the recorded expiries.
func (c *captureSink) delivered() []alarm.Expiry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]alarm.Expiry, len(c.expiries))
	copy(out, c.expiries)

	return out
}

// ids returns the delivered alarm ids in delivery order.
func (c *captureSink) ids() []int64 {
	expiries := c.delivered()
	out := make([]int64, 0, len(expiries))

	for _, e := range expiries {
		out = append(out, e.ID)
	}

	return out
}

// startWorker launches a scheduler over a fresh store inside the current
// synctest bubble and returns the pieces plus a stop function.
func startWorker(_ *testing.T) (*Store, *captureSink, func()) {
	store := NewStore()
	sink := new(captureSink)
	worker := New(store, sink)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		_ = worker.Run(ctx)
	}()

	return store, sink, cancel
}

// TestWorker_DeliversInDeadlineOrder submits alarms for 5, 3 and 8 seconds at
// the same instant and expects delivery in deadline order: 3, 5, 8.
func TestWorker_DeliversInDeadlineOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		start := time.Now().Unix()

		store.Submit(entry(1, 5))
		store.Submit(entry(2, 3))
		store.Submit(entry(3, 8))

		time.Sleep(9 * time.Second)
		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{2, 1, 3}, sink.ids())
		require.Equal(t, start+3, expiries[0].FiredAt)
		require.Equal(t, start+5, expiries[1].FiredAt)
		require.Equal(t, start+8, expiries[2].FiredAt)
	})
}

// TestWorker_PreemptedBySoonerDeadline covers the crux: the worker has
// committed to a 10-second alarm when a 2-second alarm arrives. The committed
// entry must be requeued, not delivered, and the newcomer fires first.
func TestWorker_PreemptedBySoonerDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		start := time.Now().Unix()

		store.Submit(entry(1, 10))

		// Let the worker commit to waiting on the 10-second deadline.
		time.Sleep(1 * time.Second)
		synctest.Wait()

		store.Submit(entry(2, 2))

		time.Sleep(3 * time.Second)
		synctest.Wait()

		// Only the sooner alarm has fired; the preempted one is pending again.
		require.Equal(t, []int64{2}, sink.ids())
		require.Equal(t, start+3, sink.delivered()[0].FiredAt)

		snaps := store.Snapshot()
		require.Len(t, snaps, 1)
		require.Equal(t, int64(1), snaps[0].Alarm.ID)

		time.Sleep(7 * time.Second)
		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{2, 1}, sink.ids())
		require.Equal(t, start+10, expiries[1].FiredAt)
	})
}

// TestWorker_IdleStaysBlocked verifies an empty store keeps the worker
// blocked indefinitely, and that a later insert still wakes it without any
// second event (no lost wakeups).
func TestWorker_IdleStaysBlocked(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		time.Sleep(1000 * time.Second)
		synctest.Wait()
		require.Empty(t, sink.ids())

		start := time.Now().Unix()
		store.Submit(entry(1, 1))

		time.Sleep(2 * time.Second)
		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{1}, sink.ids())
		require.Equal(t, start+1, expiries[0].FiredAt)
	})
}

// TestWorker_DeliversAlreadyDueImmediately verifies a zero-duration alarm is
// delivered without entering the timed wait.
func TestWorker_DeliversAlreadyDueImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		start := time.Now().Unix()
		store.Submit(entry(1, 0))

		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{1}, sink.ids())
		require.Equal(t, start, expiries[0].FiredAt)
	})
}

// TestWorker_CancelInFlight cancels the entry the worker is waiting on and
// expects it to never fire.
func TestWorker_CancelInFlight(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		store.Submit(entry(1, 5))

		time.Sleep(1 * time.Second)
		synctest.Wait()

		require.NoError(t, store.Cancel(1))

		time.Sleep(10 * time.Second)
		synctest.Wait()

		require.Empty(t, sink.ids())
		require.Empty(t, store.Snapshot())
	})
}

// TestWorker_ChangeInFlight reschedules the entry the worker is waiting on.
func TestWorker_ChangeInFlight(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		start := time.Now().Unix()

		store.Submit(entry(1, 10))

		time.Sleep(1 * time.Second)
		synctest.Wait()

		deadline, err := store.Change(1, 2)
		require.NoError(t, err)
		require.Equal(t, start+3, deadline)

		time.Sleep(3 * time.Second)
		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{1}, sink.ids())
		require.Equal(t, start+3, expiries[0].FiredAt)
	})
}

// TestWorker_SuspendAndReactivate parks the in-flight entry; parked time does
// not count against the alarm.
func TestWorker_SuspendAndReactivate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		start := time.Now().Unix()

		store.Submit(entry(1, 10))

		time.Sleep(2 * time.Second)
		synctest.Wait()

		remaining, err := store.Suspend(1)
		require.NoError(t, err)
		require.Equal(t, int64(8), remaining)

		// Nothing fires while parked, even well past the original deadline.
		time.Sleep(60 * time.Second)
		synctest.Wait()
		require.Empty(t, sink.ids())

		deadline, err := store.Reactivate(1)
		require.NoError(t, err)
		require.Equal(t, start+62+8, deadline)

		time.Sleep(9 * time.Second)
		synctest.Wait()

		expiries := sink.delivered()
		require.Equal(t, []int64{1}, sink.ids())
		require.Equal(t, start+70, expiries[0].FiredAt)
	})
}

// TestWorker_OrderingInvariant submits an interleaved batch and checks the
// delivered sequence is non-decreasing in deadline, ties in arrival order.
func TestWorker_OrderingInvariant(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store, sink, stop := startWorker(t)
		defer stop()

		store.Submit(entry(1, 7))
		store.Submit(entry(2, 1))
		store.Submit(entry(3, 4))
		store.Submit(entry(4, 4))
		store.Submit(entry(5, 2))

		time.Sleep(8 * time.Second)
		synctest.Wait()

		require.Equal(t, []int64{2, 5, 3, 4, 1}, sink.ids())

		expiries := sink.delivered()
		for i := 1; i < len(expiries); i++ {
			require.GreaterOrEqual(t, expiries[i].Deadline, expiries[i-1].Deadline)
		}
	})
}
