package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

const orderEventsChannel = "everbowl:order-events"

// RedisBridge mirrors hub events across service instances through a
// Redis pub/sub channel. Each instance tags outgoing events with its own
// id and ignores them on the way back in, so local subscribers see every
// event exactly once.
type RedisBridge struct {
	client     *redis.Client
	hub        *Hub
	instanceID string
	cancel     context.CancelFunc
}

type orderEvent struct {
	Instance string       `json:"instance"`
	Order    models.Order `json:"order"`
}

// AttachRedisBridge connects the hub to Redis at addr and starts
// replaying remote events into it.
func AttachRedisBridge(ctx context.Context, hub *Hub, addr string) (*RedisBridge, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	bridge := &RedisBridge{
		client:     client,
		hub:        hub,
		instanceID: uuid.NewString(),
		cancel:     cancel,
	}
	hub.attach(bridge)

	go bridge.run(runCtx)
	return bridge, nil
}

func (b *RedisBridge) publish(order models.Order) {
	payload, err := json.Marshal(orderEvent{Instance: b.instanceID, Order: order})
	if err != nil {
		log.Printf("order event marshal failed: %v", err)
		return
	}
	if err := b.client.Publish(context.Background(), orderEventsChannel, payload).Err(); err != nil {
		log.Printf("order event publish failed: %v", err)
	}
}

func (b *RedisBridge) run(ctx context.Context) {
	pubsub := b.client.Subscribe(ctx, orderEventsChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var event orderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("order event decode failed: %v", err)
				continue
			}
			if event.Instance == b.instanceID {
				continue
			}
			b.hub.broadcast(event.Order)
		}
	}
}

// Close stops the replay loop and releases the Redis connection.
func (b *RedisBridge) Close() error {
	b.cancel()
	return b.client.Close()
}
