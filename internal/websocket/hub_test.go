package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"ai-ordering-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestHub(t *testing.T) *Hub {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "ws.log"))
	hub := NewHub(nil, log)
	go hub.Run()
	return hub
}

func clientCount(hub *Hub, businessId uuid.UUID) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients[businessId])
}

// A client whose send buffer is full gets dropped; only the unregister path
// closes its channel, so the drop must not panic on a double close.
func TestHubDropsSlowClientOnce(t *testing.T) {
	hub := newTestHub(t)
	businessId := uuid.New()
	client := &Client{Hub: hub, BusinessID: businessId, Send: make(chan []byte, 1)}
	hub.register <- client

	assert.Eventually(t, func() bool {
		return clientCount(hub, businessId) == 1
	}, time.Second, 10*time.Millisecond)

	client.Send <- []byte("first")

	assert.NotPanics(t, func() {
		hub.sendLocal(businessId, []byte("second"))
	})

	assert.Eventually(t, func() bool {
		return clientCount(hub, businessId) == 0
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []byte("first"), <-client.Send)
	_, open := <-client.Send
	assert.False(t, open)

	assert.NotPanics(t, func() {
		hub.BroadcastEvent(businessId, "SESSION_LOCKED", map[string]interface{}{"session_id": uuid.New().String()})
	})
}

func TestHubDeliversToRegisteredDashboards(t *testing.T) {
	hub := newTestHub(t)
	businessId := uuid.New()
	client := &Client{Hub: hub, BusinessID: businessId, Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, BusinessID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- client
	hub.register <- other

	assert.Eventually(t, func() bool {
		return clientCount(hub, businessId) == 1 && clientCount(hub, other.BusinessID) == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastEvent(businessId, "MODE_SWITCHED", map[string]interface{}{"new_mode": "delivery"})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), "MODE_SWITCHED")
	case <-time.After(time.Second):
		t.Fatal("no message delivered to the business's dashboard")
	}
	assert.Empty(t, other.Send)
}
