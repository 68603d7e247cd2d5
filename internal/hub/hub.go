package hub

import (
	"encoding/json"
	"sync"
)

// Message represents a real-time notification to be sent to clients watching
// an event: a new chat message, an RSVP change, a vote update.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Notification types broadcast on an event's channel.
const (
	TypeChatMessage = "chat_message"
	TypeRSVP        = "rsvp"
	TypeVote        = "vote"
	TypeStatus      = "status"
)

// Client represents a single client connection (a guest watching an event).
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub manages all watched events and their clients.
type Hub struct {
	events map[uint]map[Client]bool
	mu     sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		events: make(map[uint]map[Client]bool),
	}
}

// Subscribe adds a new client to a specific event.
func (h *Hub) Subscribe(eventID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.events[eventID]; !ok {
		h.events[eventID] = make(map[Client]bool)
	}
	h.events[eventID][client] = true
}

// Unsubscribe removes a client from an event.
func (h *Hub) Unsubscribe(eventID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.events[eventID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.events, eventID)
			}
		}
	}
}

// Broadcast sends a notification to all clients watching a specific event.
func (h *Hub) Broadcast(eventID uint, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.events[eventID]; ok {
		messageBytes, err := json.Marshal(msg)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
