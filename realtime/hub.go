package realtime

import (
	"sync"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

const subscriptionBuffer = 16

// Subscription is a cancellable handle on a stream of order snapshots.
// Events arrive on C until Cancel is called.
type Subscription struct {
	C      <-chan models.Order
	ch     chan models.Order
	userID string
	hub    *Hub
	once   sync.Once
}

// Cancel deregisters the subscription. After Cancel returns no further
// events are delivered and C is closed.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// Hub fans order events out to active subscribers: customers watching
// their own orders and admins watching all of them. Publishing never
// blocks; a subscriber that falls behind its buffer misses events.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	bridge *RedisBridge
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers interest in orders owned by userID. An empty
// userID subscribes to every order (the admin view).
func (h *Hub) Subscribe(userID string) *Subscription {
	ch := make(chan models.Order, subscriptionBuffer)
	sub := &Subscription{C: ch, ch: ch, userID: userID, hub: h}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Publish delivers an order snapshot to matching local subscribers and,
// when a bridge is attached, to the other service instances.
func (h *Hub) Publish(order models.Order) {
	h.broadcast(order)

	h.mu.Lock()
	bridge := h.bridge
	h.mu.Unlock()
	if bridge != nil {
		bridge.publish(order)
	}
}

// broadcast delivers to local subscribers only. The bridge uses it to
// replay events received from other instances.
func (h *Hub) broadcast(order models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if sub.userID != "" && sub.userID != order.User_id {
			continue
		}
		select {
		case sub.ch <- order:
		default:
		}
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
}

func (h *Hub) attach(bridge *RedisBridge) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bridge = bridge
}
