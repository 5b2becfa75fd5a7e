package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub tracks open realtime connections. Booking and payment events fan
// out to every client; tracking updates only reach clients that sent
// subscribe_tracking for that schedule. Delivery is best-effort: a client
// whose send buffer is full is dropped rather than blocking the caller.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	tracking map[int64]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		tracking: make(map[int64]map[string]*Client),
	}
}

func (h *Hub) AddClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// RemoveClient detaches the client from the hub and every tracking
// subscription, then closes its send channel so the write pump exits.
func (h *Hub) RemoveClient(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		for scheduleID, subs := range h.tracking {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.tracking, scheduleID)
			}
		}
	}
	h.mu.Unlock()

	if ok {
		close(c.Send)
	}
}

// SubscribeTracking registers the client for position updates of one
// schedule. A client may follow several schedules at once.
func (h *Hub) SubscribeTracking(scheduleID int64, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	if _, ok := h.tracking[scheduleID]; !ok {
		h.tracking[scheduleID] = make(map[string]*Client)
	}
	h.tracking[scheduleID][clientID] = c
}

// BroadcastAll sends the event to every connected client.
func (h *Hub) BroadcastAll(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[HUB] marshal broadcast failed: %v", err)
		return
	}

	h.mu.RLock()
	stale := h.deliver(h.clients, payload)
	h.mu.RUnlock()

	h.dropAll(stale)
}

// BroadcastTracking sends a position event to the schedule's subscribers.
func (h *Hub) BroadcastTracking(scheduleID int64, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[HUB] marshal tracking failed: %v", err)
		return
	}

	h.mu.RLock()
	stale := h.deliver(h.tracking[scheduleID], payload)
	h.mu.RUnlock()

	h.dropAll(stale)
}

// deliver pushes payload to each client without blocking. Clients whose
// buffer is full are returned for removal; caller must not hold the write
// lock.
func (h *Hub) deliver(clients map[string]*Client, payload []byte) []string {
	var stale []string
	for id, c := range clients {
		select {
		case c.Send <- payload:
		default:
			stale = append(stale, id)
		}
	}
	return stale
}

func (h *Hub) dropAll(ids []string) {
	for _, id := range ids {
		log.Printf("[HUB] dropping slow client %s", id)
		h.RemoveClient(id)
	}
}

// ClientCount reports connected clients, used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
