package server

import (
	"context"
	"sync"

	domain "github.com/oshokin/alarm-scheduler/internal/domain/alarm"
	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind starts losing notifications instead of blocking the
// worker.
const subscriberBuffer = 16

// hub fans expiry notifications out to stream subscribers. It is the delivery
// sink the worker hands fired alarms to.
type hub struct {
	// mu protects the subscriber registry.
	mu sync.Mutex
	// nextID is the next subscription identifier to hand out.
	nextID int64
	// subscribers holds the active subscriptions keyed by identifier.
	subscribers map[int64]*subscriber
}

// subscriber is one registered expiry listener.
type subscriber struct {
	// groupID filters notifications to one display group; zero matches all.
	groupID int64
	// ch carries the notifications to the stream handler.
	ch chan domain.Expiry
}

// newHub creates an empty hub.
func newHub() *hub {
	return &hub{
		subscribers: make(map[int64]*subscriber),
	}
}

// Deliver hands the expiry to every matching subscriber. Delivery never
// blocks: the worker must move on to the next deadline regardless of how
// fast the streams drain.
func (h *hub) Deliver(ctx context.Context, expiry domain.Expiry) {
	logger.InfoKV(ctx, "Alarm expired",
		"alarm_id", expiry.ID,
		"group_id", expiry.GroupID,
		"message", expiry.Message,
		"fired_at", expiry.FiredAt)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers {
		if sub.groupID != 0 && sub.groupID != expiry.GroupID {
			continue
		}

		select {
		case sub.ch <- expiry:
		default:
			logger.WarnKV(ctx, "Dropping expiry notification for slow subscriber",
				"alarm_id", expiry.ID,
				"group_id", expiry.GroupID)
		}
	}
}

// Subscribe registers a listener for expiries in the given group (zero means
// every group). The returned release function removes the subscription; the
// channel is not closed so late deliveries stay safe.
func (h *hub) Subscribe(groupID int64) (<-chan domain.Expiry, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	sub := &subscriber{
		groupID: groupID,
		ch:      make(chan domain.Expiry, subscriberBuffer),
	}
	h.subscribers[id] = sub

	release := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subscribers, id)
	}

	return sub.ch, release
}
