package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api"
)

// EventNewMessage is pushed to a receiver for every message sent to them
const EventNewMessage = "new_message"

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Event is the envelope written to websocket clients
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NotificationHub keeps the open websocket connections of each user.
// A user may be connected from several tabs at once.
type NotificationHub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[string]map[*wsClient]struct{}
}

type wsClient struct {
	hub    *NotificationHub
	userID string
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

// NewNotificationHub returns an empty hub. checkOrigin may be nil to accept any origin.
func NewNotificationHub(checkOrigin func(r *http.Request) bool) *NotificationHub {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &NotificationHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		clients: make(map[string]map[*wsClient]struct{}),
	}
}

// HandleMessagesWebSocket upgrades an authenticated request and streams the
// user's events until the connection drops
func (h *NotificationHub) HandleMessagesWebSocket(w http.ResponseWriter, r *http.Request) {
	u, ok := api.UserFromContext(r.Context())
	if !ok {
		writeError(w, "websocket requires a user", api.ErrUnauthenticated)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("WebSocket upgrade error", "error", err)
		return
	}

	c := &wsClient{hub: h, userID: u.ID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(c)
	zap.S().Debugw("user connected to /ws/messages", "userID", u.ID)

	go c.writePump()
	c.readPump()
}

// Connected returns the number of open connections of userID
func (h *NotificationHub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Notify sends an event to every connection of userID. Slow connections are dropped.
func (h *NotificationHub) Notify(userID, event string, data interface{}) {
	b, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		zap.S().Errorw("failed to marshal event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*wsClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if !c.trySend(b) {
			zap.S().Warnw("dropping slow websocket client", "userID", userID)
			c.close()
		}
	}
}

// CloseAll disconnects every client
func (h *NotificationHub) CloseAll() {
	h.mu.RLock()
	var all []*wsClient
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()
	for _, c := range all {
		c.close()
	}
}

func (h *NotificationHub) add(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*wsClient]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
}

func (h *NotificationHub) remove(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
}

// trySend queues b without blocking. It reports false when the buffer is full.
func (c *wsClient) trySend(b []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

func (c *wsClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.hub.remove(c)
	close(c.send)
	zap.S().Debugw("user disconnected from /ws/messages", "userID", c.userID)
}

func (c *wsClient) readPump() {
	defer c.close()
	c.conn.SetReadLimit(8 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
