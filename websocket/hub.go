package websocket

import (
	"sync"

	"github.com/sirupsen/logrus"

	"tokusound/types"
)

// Hub interface defines the methods for managing WebSocket connections
type Hub interface {
	Run()
	BroadcastSubmission(event types.SubmissionEvent)
	RegisterClient(client *Client)
	UnregisterClient(client *Client)
}

// hub maintains the set of active clients and broadcasts submission
// events to them
type hub struct {
	// Registered clients mapped by category subscription
	clients map[string]map[*Client]bool

	// Broadcast channel for submission events
	broadcast chan types.SubmissionEvent

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() Hub {
	return &hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan types.SubmissionEvent),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main event loop
func (h *hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.category] == nil {
				h.clients[client.category] = make(map[*Client]bool)
			}
			h.clients[client.category][client] = true
			h.mu.Unlock()
			logrus.WithField("category", client.category).Debug("websocket client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.category]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.category)
					}
				}
			}
			h.mu.Unlock()
			logrus.WithField("category", client.category).Debug("websocket client disconnected")

		case event := <-h.broadcast:
			h.mu.RLock()
			h.deliver(event.Category, event)
			if event.Category != "all" {
				h.deliver("all", event)
			}
			h.mu.RUnlock()
		}
	}
}

// deliver sends an event to every client subscribed to key. Slow clients
// get dropped rather than blocking the loop.
func (h *hub) deliver(key string, event types.SubmissionEvent) {
	clients, ok := h.clients[key]
	if !ok {
		return
	}
	for client := range clients {
		select {
		case client.send <- event:
		default:
			close(client.send)
			delete(clients, client)
		}
	}
	if len(clients) == 0 {
		delete(h.clients, key)
	}
}

// BroadcastSubmission announces an accepted submission to subscribed
// clients. Dropping the event when the channel is full is fine: the hub is
// a notification channel, the record on disk is the source of truth.
func (h *hub) BroadcastSubmission(event types.SubmissionEvent) {
	select {
	case h.broadcast <- event:
	default:
		logrus.WithField("record", event.FileName).Warn("websocket broadcast channel full, dropping event")
	}
}

// RegisterClient registers a new client with the hub
func (h *hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient unregisters a client from the hub
func (h *hub) UnregisterClient(client *Client) {
	h.unregister <- client
}
