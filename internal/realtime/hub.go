package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"cache-service-api/internal/cache"
)

// Client represents a single event-stream client connection.
// We keep it minimal here; the actual network conn is managed in the ws
// handler. Send must not block: the engine publishes events while holding
// its lock, so clients buffer internally and report false when full.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active clients and broadcasts cache events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			clients: make(map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Attach subscribes the hub to a cache notifier and returns the
// subscription id. The callback only encodes and enqueues; socket writes
// happen on each client's own writer.
func (h *Hub) Attach(n *cache.Notifier) string {
	return n.Subscribe(func(ev cache.CacheEvent) {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Println("realtime: failed to encode cache event:", err)
			return
		}
		h.Broadcast(payload)
	})
}

// Broadcast sends a message to every registered client.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if ok := c.Send(message); !ok {
			// client buffer full or connection gone; its handler cleans up
		}
	}
}
