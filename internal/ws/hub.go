package ws

import (
	"encoding/json"
	"sync"

	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
)

// Hub tracks which clients are connected to which room so game events can be
// fanned out. It knows nothing about game rules; the room store is the
// source of truth for rosters.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[string]*Client)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[c.RoomID]
	if !ok {
		clients = make(map[string]*Client)
		h.rooms[c.RoomID] = clients
	}
	clients[c.ID] = c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[c.RoomID]
	if !ok {
		return
	}
	delete(clients, c.ID)
	if len(clients) == 0 {
		delete(h.rooms, c.RoomID)
	}
}

// Broadcast sends an enveloped message to every client in the room. Slow
// clients get dropped messages rather than blocking the sender.
func (h *Hub) Broadcast(roomID, msgType string, data any) {
	payload, ok := envelope(msgType, data)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.rooms[roomID] {
		select {
		case c.send <- payload:
		default:
			logger.Error("client %s send buffer full, dropping %s", c.ID, msgType)
		}
	}
}

// SendTo sends an enveloped message to a single client.
func (h *Hub) SendTo(c *Client, msgType string, data any) {
	payload, ok := envelope(msgType, data)
	if !ok {
		return
	}
	select {
	case c.send <- payload:
	default:
		logger.Error("client %s send buffer full, dropping %s", c.ID, msgType)
	}
}

func envelope(msgType string, data any) ([]byte, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("marshal %s payload: %v", msgType, err)
		return nil, false
	}
	payload, err := json.Marshal(WSMessage{Type: msgType, Data: raw})
	if err != nil {
		logger.Error("marshal %s envelope: %v", msgType, err)
		return nil, false
	}
	return payload, true
}
