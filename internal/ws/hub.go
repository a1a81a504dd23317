package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one browser connection. Outbound playback frames and run results
// are queued on send and written by writePump; a slow consumer loses frames
// rather than stalling the player.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Hub tracks the connected clients. Playback frames fan out to everyone;
// per-connection messages such as the parameter defaults go to one client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// Unregister removes the client and closes its send channel, which stops its
// writePump. Safe to call for a client that was already removed.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Broadcast queues msg for every connected client without blocking the
// caller. Clients whose queue is full skip this message.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		h.Send(c, msg)
	}
}

// Send queues msg for a single client, dropping it if the queue is full.
func (h *Hub) Send(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		log.Printf("Send queue full, dropping %d-byte message", len(msg))
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
