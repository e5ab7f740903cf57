package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

func receive(t *testing.T, sub *Subscription) models.Order {
	t.Helper()
	select {
	case order := <-sub.C:
		return order
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for order event")
		return models.Order{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case order, ok := <-sub.C:
		if ok {
			t.Fatalf("unexpected order event: %+v", order)
		}
	default:
	}
}

func TestPublishReachesOwnerAndAdminSubscribers(t *testing.T) {
	hub := NewHub()
	owner := hub.Subscribe("u1")
	admin := hub.Subscribe("")
	other := hub.Subscribe("u2")
	defer owner.Cancel()
	defer admin.Cancel()
	defer other.Cancel()

	published := models.Order{Order_id: "o1", User_id: "u1", Status: models.StatusPreparing}
	hub.Publish(published)

	assert.Equal(t, published, receive(t, owner))
	assert.Equal(t, published, receive(t, admin))
	assertNoEvent(t, other)
}

func TestStatusChangePropagatesWithoutRefresh(t *testing.T) {
	hub := NewHub()
	customer := hub.Subscribe("u1")
	defer customer.Cancel()

	hub.Publish(models.Order{Order_id: "o1", User_id: "u1", Status: models.StatusPending})
	hub.Publish(models.Order{Order_id: "o1", User_id: "u1", Status: models.StatusPreparing})

	assert.Equal(t, models.StatusPending, receive(t, customer).Status)
	assert.Equal(t, models.StatusPreparing, receive(t, customer).Status)
}

func TestCancelledSubscriptionReceivesNothing(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("u1")
	sub.Cancel()

	hub.Publish(models.Order{Order_id: "o1", User_id: "u1"})

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed after Cancel")
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("u1")

	sub.Cancel()
	require.NotPanics(t, sub.Cancel)
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe("")
	defer slow.Cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriptionBuffer*3; i++ {
			hub.Publish(models.Order{Order_id: "o", User_id: "u1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a subscriber that is not draining")
	}
}
