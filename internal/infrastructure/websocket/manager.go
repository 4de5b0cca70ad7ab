package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"giglance/internal/domain/repository"
	"giglance/internal/infrastructure/realtime"
	"giglance/pkg/logger"
)

// Client represents a WebSocket connection client. One user may hold
// several connections (browser tabs); each gets its own Client.
type Client struct {
	ConnID string
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu         sync.Mutex
	subs       map[string]*realtime.Subscription
	sendClosed bool
}

// trySend queues payload without blocking. Serialized on c.mu with
// closeSend so the channel can never be closed between the check and
// the send. Reports false only when the client's queue is full.
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sendClosed {
		return true
	}

	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// closeSend ends the client's outbound queue. Safe to call once the
// client is unregistered, even with forwardEvents goroutines still
// draining their streams.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sendClosed {
		c.sendClosed = true
		close(c.Send)
	}
}

func (c *Client) addSubscription(sub *realtime.Subscription) {
	c.mu.Lock()
	c.subs[sub.ID] = sub
	c.mu.Unlock()
}

func (c *Client) removeSubscription(id string) (*realtime.Subscription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub, ok := c.subs[id]
	if ok {
		delete(c.subs, id)
	}
	return sub, ok
}

// releaseSubscriptions ends every stream held by the connection. Called
// on teardown so no subscription outlives its client.
func (c *Client) releaseSubscriptions() {
	c.mu.Lock()
	subs := c.subs
	c.subs = make(map[string]*realtime.Subscription)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

// Manager manages all active WebSocket connections and their hub
// subscriptions.
type Manager struct {
	hub         *realtime.Hub
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository

	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new WebSocket connection manager
func NewManager(hub *realtime.Hub, orderRepo repository.OrderRepository, profileRepo repository.ProfileRepository) *Manager {
	return &Manager{
		hub:         hub,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		clients:     make(map[string]*Client),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
	}
}

// NewClient wraps an upgraded connection for userID.
func (m *Manager) NewClient(connID, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ConnID: connID,
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		subs:   make(map[string]*realtime.Subscription),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ConnID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: user=%s conn=%s", client.UserID, client.ConnID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				registered := false
				if _, ok := m.clients[client.ConnID]; ok {
					delete(m.clients, client.ConnID)
					registered = true
				}
				m.mutex.Unlock()
				if registered {
					client.releaseSubscriptions()
					client.closeSend()
				}
				logger.Info("Client unregistered: user=%s conn=%s", client.UserID, client.ConnID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error: %v", err)
			}
			break
		}

		m.HandleClientMessage(c, message)
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			logger.Error("WebSocket write error: %v", err)
			return
		}
	}
}
