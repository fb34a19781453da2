package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"janaseva/pkg/logger"
)

// Hub tracks one room per user and fans events out to every connection a
// user has open. Delivery is best effort: events for offline users are
// dropped and slow connections are disconnected rather than blocked on.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns room membership. It must be started before any client connects
// and stops when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.userID]; !ok {
				h.rooms[client.userID] = make(map[*Client]struct{})
			}
			h.rooms[client.userID][client] = struct{}{}
			h.mu.Unlock()
			logger.Debug("User %s joined their room", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.userID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.userID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("User %s left their room", client.userID)

		case <-ctx.Done():
			h.mu.Lock()
			for userID, room := range h.rooms {
				for client := range room {
					close(client.send)
				}
				delete(h.rooms, userID)
			}
			h.mu.Unlock()
			return
		}
	}
}

// SendToUser pushes an event to every open connection of userID. It never
// blocks: offline users are skipped and clients with a full send buffer
// miss the event.
func (h *Hub) SendToUser(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal %s event for user %s: %v", event.Type, userID, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	room, ok := h.rooms[userID]
	if !ok {
		return
	}

	for client := range room {
		select {
		case client.send <- payload:
		default:
			logger.Warn("Dropping %s event for user %s: send buffer full", event.Type, userID)
		}
	}
}

// IsOnline reports whether userID has at least one open connection.
func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[userID]) > 0
}
