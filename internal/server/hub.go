package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"github.com/rileyhilliard/widgetmon/internal/logger"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 50 * time.Second
	maxMessageSize = 1024
	broadcastQueue = 16
)

var upgrader = websocket.Upgrader{
	// The server binds to loopback by default and serves local shells.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one connected WebSocket peer.
type Client struct {
	ID      string
	conn    *websocket.Conn
	limiter *rate.Limiter
	writeMu sync.Mutex
}

// Send writes v to the client as a JSON text frame.
func (c *Client) Send(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, payload)
}

func (c *Client) write(messageType int, payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, payload)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// HubHandlers are the callbacks a Hub invokes for each client.
type HubHandlers struct {
	// OnConnect runs once the client is registered, before any frame is read.
	OnConnect func(c *Client)
	// OnMessage runs for every inbound frame the client's limiter allows.
	OnMessage func(c *Client, data []byte)
	// OnLimited runs for frames dropped by the limiter.
	OnLimited func(c *Client)
}

// Hub tracks WebSocket clients and fans broadcasts out to them.
type Hub struct {
	clients   map[string]*Client
	broadcast chan []byte
	mutex     sync.RWMutex
	closed    bool
	handlers  HubHandlers
	rate      rate.Limit
	burst     int
	log       logger.Logger
}

// NewHub creates a hub whose clients may send up to rps frames per second
// with the given burst.
func NewHub(rps float64, burst int, handlers HubHandlers, log logger.Logger) *Hub {
	if log == nil {
		log = logger.Noop()
	}
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan []byte, broadcastQueue),
		handlers:  handlers,
		rate:      rate.Limit(rps),
		burst:     burst,
		log:       log,
	}
}

// Run delivers broadcasts and pings clients until ctx is done, then closes
// every connection.
func (h *Hub) Run(ctx context.Context) {
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case message := <-h.broadcast:
			h.writeToClients(message)

		case <-pingTicker.C:
			h.pingClients()

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Broadcast queues message for every client. When the queue is full the
// message is dropped; the next state update supersedes it anyway.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("broadcast queue full, dropping message")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func errShuttingDown() *errors.Error {
	return errors.New(errors.ErrServer, "Server is shutting down", "Reconnect once widgetmon serve is running again")
}

// Closed reports whether the hub has shut down and stopped accepting clients.
func (h *Hub) Closed() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.closed
}

// add registers c. It returns false once the hub has closed.
func (h *Hub) add(c *Client) bool {
	h.mutex.Lock()
	if h.closed {
		h.mutex.Unlock()
		return false
	}
	h.clients[c.ID] = c
	h.mutex.Unlock()
	h.log.Info("client %s connected", c.ID)
	return true
}

func (h *Hub) remove(c *Client) {
	h.mutex.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	h.mutex.Unlock()
	if ok {
		c.conn.Close()
		h.log.Info("client %s disconnected", c.ID)
	}
}

func (h *Hub) snapshot() []*Client {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	out := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, c)
	}
	return out
}

func (h *Hub) writeToClients(payload []byte) {
	for _, c := range h.snapshot() {
		if err := c.write(websocket.TextMessage, payload); err != nil {
			h.log.Warn("write to %s failed: %v", c.ID, err)
			h.remove(c)
		}
	}
}

func (h *Hub) pingClients() {
	for _, c := range h.snapshot() {
		if err := c.ping(); err != nil {
			h.log.Warn("ping to %s failed: %v", c.ID, err)
			h.remove(c)
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	h.closed = true
	h.mutex.Unlock()

	for _, c := range h.snapshot() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		c.writeMu.Unlock()
		h.remove(c)
	}
}

// HandleWebSocket upgrades the request and serves the client until it
// disconnects.
func (h *Hub) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Closed() {
			abortWithError(c, http.StatusServiceUnavailable, errShuttingDown())
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.log.Warn("upgrade failed: %v", err)
			return
		}

		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		client := &Client{
			ID:      uuid.NewString(),
			conn:    conn,
			limiter: rate.NewLimiter(h.rate, h.burst),
		}
		if !h.add(client) {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			conn.Close()
			return
		}
		defer h.remove(client)

		if h.handlers.OnConnect != nil {
			h.handlers.OnConnect(client)
		}

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNoStatusReceived) {
					h.log.Warn("client %s: %v", client.ID, err)
				}
				return
			}

			if !client.limiter.Allow() {
				if h.handlers.OnLimited != nil {
					h.handlers.OnLimited(client)
				}
				continue
			}
			if h.handlers.OnMessage != nil {
				h.handlers.OnMessage(client, data)
			}
		}
	}
}
