package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans live order events out to merchant dashboards. Connections are
// grouped by business; Redis pub/sub carries events across instances so a
// dashboard sees orders confirmed on any replica.
type Hub struct {
	// BusinessID -> connected dashboards (multi-tab, multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.BusinessID] = append(h.clients[client.BusinessID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard connected", map[string]interface{}{"business_id": client.BusinessID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.BusinessID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.BusinessID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.BusinessID]) == 0 {
					delete(h.clients, client.BusinessID)
					h.logger.Info("Hub", "Dashboard fully disconnected", map[string]interface{}{"business_id": client.BusinessID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastOrder implements the order services' broadcaster: one event to
// every dashboard of the order's business, local and remote.
func (h *Hub) BroadcastOrder(businessId uuid.UUID, event string, order *dto.OrderDTO) {
	h.broadcast(businessId, event, order)
}

// BroadcastEvent carries session lifecycle events (locks, mode switches)
// consumed from the NATS bus onto the same dashboard feed.
func (h *Hub) BroadcastEvent(businessId uuid.UUID, event string, payload map[string]interface{}) {
	h.broadcast(businessId, event, payload)
}

func (h *Hub) broadcast(businessId uuid.UUID, event string, body interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": event,
		"data": body,
	})

	h.sendLocal(businessId, data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_business_id": businessId.String(),
			"message":            data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "order_events", jsonPayload)
	}
}

func (h *Hub) sendLocal(businessId uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, ok := h.clients[businessId]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// The unregister path owns channel closure; closing here too
			// would double-close on a slow client.
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"business_id": businessId})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and forwards events
	// it has local dashboards for; the rest are dropped.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "order_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetBusinessID string          `json:"target_business_id"`
			Message          json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		businessId, err := uuid.Parse(payload.TargetBusinessID)
		if err != nil {
			continue
		}

		h.sendLocal(businessId, payload.Message)
	}
}
