package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"school-cms/pkg/logger"
)

// Conn is the part of a websocket connection the hub writes to
type Conn interface {
	WriteJSON(v interface{}) error
}

type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type client struct {
	conn   Conn
	userID uuid.UUID
	mu     sync.Mutex // serializes writes to conn
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub tracks connected admin panels and fans notifications out to them
type Hub struct {
	mu      sync.RWMutex
	clients map[Conn]*client
}

// Manager is the hub used by the websocket route
var Manager = NewHub()

func NewHub() *Hub {
	return &Hub{clients: make(map[Conn]*client)}
}

func (h *Hub) RegisterClient(conn Conn, userID uuid.UUID) {
	h.mu.Lock()
	h.clients[conn] = &client{conn: conn, userID: userID}
	total := len(h.clients)
	h.mu.Unlock()

	logger.WebSocket("client_registered", "Client registered", map[string]interface{}{
		"user_id": userID.String(),
		"clients": total,
	})
}

func (h *Hub) UnregisterClient(conn Conn) {
	h.mu.Lock()
	c, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		logger.WebSocket("client_unregistered", "Client unregistered", map[string]interface{}{
			"user_id": c.userID.String(),
		})
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every client. Clients that fail to receive it are dropped.
func (h *Hub) Broadcast(msgType string, data interface{}) int {
	msg := Message{Type: msgType, Data: data, Timestamp: time.Now().UTC()}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.send(msg); err != nil {
			logger.WebSocketError("broadcast_failed", "Failed to deliver message", err, map[string]interface{}{
				"user_id": c.userID.String(),
				"type":    msgType,
			})
			h.UnregisterClient(c.conn)
			continue
		}
		delivered++
	}
	return delivered
}

// HandleMessage answers client pings. Other messages are ignored.
func (h *Hub) HandleMessage(conn Conn, payload []byte) {
	var incoming struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &incoming); err != nil {
		return
	}

	if incoming.Type != "ping" {
		return
	}

	h.mu.RLock()
	c, ok := h.clients[conn]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if err := c.send(Message{Type: "pong", Timestamp: time.Now().UTC()}); err != nil {
		logger.WebSocketError("pong_failed", "Failed to answer ping", err, nil)
	}
}
