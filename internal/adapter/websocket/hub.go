// Package websocket pushes realtime updates (notifications, connection
// state, session transitions) to subscribed UI clients.
package websocket

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/chargehub/chargehub/internal/observability/telemetry"
)

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages fanned out to every client.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex
}

type Client struct {
	hub *Hub
	// The websocket connection.
	conn *websocket.Conn
	// Buffered channel of outbound messages.
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			telemetry.RealtimeClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			telemetry.RealtimeClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			telemetry.RealtimeClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a message for every connected client. A full broadcast
// buffer drops the message rather than blocking the simulation loops.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve registers a connection and pumps it until it closes. Intended to be
// called from the fiber websocket handler; it blocks for the lifetime of
// the connection.
func (h *Hub) Serve(conn *websocket.Conn) {
	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump()
	client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		// The feed is push-only; the read loop only keeps the connection
		// alive and drains control messages.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		// Fold queued updates into the current websocket message.
		n := len(c.send)
		for i := 0; i < n; i++ {
			w.Write(<-c.send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
