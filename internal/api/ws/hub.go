package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Hub tracks live feed subscribers and fans change events out to them.
type Hub struct {
	connections map[uuid.UUID]*client
	mu          sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[id] = &client{conn: conn}
	log.Printf("[Hub] subscriber %s connected. Total connections: %d", id, len(h.connections))
	return id
}

func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, exists := h.connections[id]; exists {
		c.conn.Close()
		delete(h.connections, id)
		log.Printf("[Hub] subscriber %s disconnected. Total connections: %d", id, len(h.connections))
	}
}

// Broadcast sends an event to every subscriber. Subscribers whose write fails
// are dropped.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Message{Type: event, Data: data})
	if err != nil {
		log.Printf("[Hub] failed to encode %s event: %v", event, err)
		return
	}

	for id, c := range h.snapshot() {
		if err := c.write(payload); err != nil {
			log.Printf("[Hub] write to %s failed: %v", id, err)
			h.Unregister(id)
		}
	}
}

// Ping sends a ping control frame to every subscriber and drops those that
// cannot be reached. It returns the number of dropped subscribers.
func (h *Hub) Ping() int {
	dropped := 0
	for id, c := range h.snapshot() {
		if err := c.ping(); err != nil {
			h.Unregister(id)
			dropped++
		}
	}
	return dropped
}

func (h *Hub) snapshot() map[uuid.UUID]*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := make(map[uuid.UUID]*client, len(h.connections))
	for id, c := range h.connections {
		targets[id] = c
	}
	return targets
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
