package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

// WSOut is the envelope pushed to connected guests.
type WSOut struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Client is one websocket connection scoped to an order.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	orderID uuid.UUID

	// send is never closed. Shutdown is signalled through done so that a
	// concurrent Push holding a stale snapshot of this client can still
	// select on send without panicking.
	send   chan WSOut
	done   chan struct{}
	closed sync.Once
}

// Hub fans pushed events out to every connection viewing an order.
type Hub struct {
	log *zap.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log.With(zap.String("component", "ws_hub")),
		clients: make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Register attaches a connection and starts its pumps.
func (h *Hub) Register(conn *websocket.Conn, orderID uuid.UUID) *Client {
	client := &Client{
		hub:     h,
		conn:    conn,
		orderID: orderID,
		send:    make(chan WSOut, sendBufferSize),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.clients[orderID] == nil {
		h.clients[orderID] = make(map[*Client]struct{})
	}
	h.clients[orderID][client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) unregister(client *Client) {
	client.closed.Do(func() {
		h.mu.Lock()
		if conns, ok := h.clients[client.orderID]; ok {
			delete(conns, client)
			if len(conns) == 0 {
				delete(h.clients, client.orderID)
			}
		}
		h.mu.Unlock()

		close(client.done)
		client.conn.Close()
	})
}

// Push sends an event to every connection viewing the order. Slow consumers
// are dropped rather than blocking the caller.
func (h *Hub) Push(orderID uuid.UUID, event WSOut) {
	h.mu.RLock()
	conns := make([]*Client, 0, len(h.clients[orderID]))
	for client := range h.clients[orderID] {
		conns = append(conns, client)
	}
	h.mu.RUnlock()

	for _, client := range conns {
		select {
		case client.send <- event:
		case <-client.done:
		default:
			h.log.Warn("Dropping slow websocket consumer",
				zap.String("order_id", orderID.String()))
			go h.unregister(client)
		}
	}
}

// ConnectionCount reports connections for an order, used in tests and stats.
func (h *Hub) ConnectionCount(orderID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[orderID])
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the guest surface is push-only. It keeps
// the connection alive and detects closes.
func (c *Client) readPump() {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
