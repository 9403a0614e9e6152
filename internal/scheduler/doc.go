// Package scheduler implements the deadline-ordered alarm scheduling core.
//
// A Store holds the pending queue, sorted by absolute deadline, behind a
// single mutex, together with the "currently targeted deadline" sentinel and
// a capacity-one wake channel. A Scheduler worker consumes the queue head and
// sleeps until its deadline; producers inserting a strictly sooner deadline
// interrupt the sleep, making the worker requeue its in-hand entry and pick
// the new true head. Signaling is conditional, so the worker is woken only
// when its current wait target is actually stale.
//
// Cancel, Change, Suspend and Reactivate operate under the same lock
// discipline and re-evaluate the wake condition the same way an insert does.
package scheduler
