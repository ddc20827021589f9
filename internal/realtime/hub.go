// Package realtime streams admin dashboard stat refreshes over WebSocket.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// StatsUpdate is broadcast to connected admin clients whenever a write
// changes the global counters.
type StatsUpdate struct {
	Kind      string           `json:"kind"` // order_created, repair_updated, quote_received
	Metrics   map[string]int64 `json:"metrics,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active connections and broadcasts stat updates
type Hub struct {
	logger  *slog.Logger
	clients map[*client]bool
	mutex   sync.RWMutex
}

// NewHub creates a new hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]bool),
	}
}

// Broadcast sends a stats update to every connected client. Slow clients are
// disconnected rather than allowed to block the broadcast.
func (h *Hub) Broadcast(update StatsUpdate) {
	update.Timestamp = time.Now().UTC()
	payload, err := json.Marshal(update)
	if err != nil {
		h.logger.Error("failed to marshal stats update", "error", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades the request and registers the connection
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mutex.Lock()
	h.clients[cl] = true
	h.mutex.Unlock()
	h.logger.Debug("realtime client connected", "client_id", cl.id)

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for payload := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// readPump discards inbound frames and detects disconnects
func (h *Hub) readPump(cl *client) {
	defer func() {
		h.mutex.Lock()
		if _, ok := h.clients[cl]; ok {
			delete(h.clients, cl)
			close(cl.send)
		}
		h.mutex.Unlock()
		cl.conn.Close()
		h.logger.Debug("realtime client disconnected", "client_id", cl.id)
	}()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
