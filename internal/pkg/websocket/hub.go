// Package websocket streams registry events to connected browsers and tools.
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/events"
)

// Hub maintains the set of connected clients and fans registry events out
// to them. It implements events.Publisher.
type Hub struct {
	// Registered clients. A client with an empty section filter receives
	// every event.
	clients map[*Client]struct{}

	// Mutex for concurrent access to clients and closed
	mu     sync.RWMutex
	closed bool

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// register adds client unless the hub is already closed.
func (h *Hub) register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[client] = struct{}{}

	h.logger.Info().
		Str("sectionNo", client.sectionNo).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
	return true
}

// unregister removes client and closes its send channel. It is safe to call
// more than once.
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Str("sectionNo", client.sectionNo).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client unregistered")
}

// Publish broadcasts event to every client interested in its section.
// Clients whose send buffer is full are dropped.
func (h *Hub) Publish(_ context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for client := range h.clients {
		if !client.wants(event) {
			continue
		}
		select {
		case client.send <- data:
			delivered++
		default:
			h.logger.Warn().
				Str("addr", client.conn.RemoteAddr().String()).
				Msg("Dropping slow websocket client")
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("eventType", string(event.Type)).
		Int("clientCount", delivered).
		Msg("Event broadcasted")
	return nil
}

// Close disconnects every client. Later connections are refused.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for client := range h.clients {
		h.removeLocked(client)
	}
	return nil
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
