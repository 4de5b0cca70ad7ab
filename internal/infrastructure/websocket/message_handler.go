package websocket

import (
	"context"
	"encoding/json"
	"time"

	"giglance/internal/infrastructure/realtime"
	"giglance/pkg/logger"
)

// WebSocket Message Types
const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeSubscribe    = "subscribe"
	MessageTypeSubscribed   = "subscribed"
	MessageTypeUnsubscribe  = "unsubscribe"
	MessageTypeUnsubscribed = "unsubscribed"
	MessageTypeEvent        = "event"
	MessageTypeError        = "error"
)

// WSMessage is the frame exchanged on the wire, both directions.
type WSMessage struct {
	Type           string            `json:"type"`
	Table          string            `json:"table,omitempty"`
	Event          string            `json:"event,omitempty"`
	Filter         map[string]string `json:"filter,omitempty"`
	SubscriptionID string            `json:"subscription_id,omitempty"`
	Record         interface{}       `json:"record,omitempty"`
	Message        string            `json:"message,omitempty"`
	Timestamp      string            `json:"timestamp"`
}

// HandleClientMessage processes one incoming WebSocket frame.
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var wsMessage WSMessage

	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		logger.Warn("WebSocket: invalid frame from user %s: %v", client.UserID, err)
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.sendToClient(client, WSMessage{Type: MessageTypePong})

	case MessageTypeSubscribe:
		m.handleSubscribe(client, wsMessage)

	case MessageTypeUnsubscribe:
		m.handleUnsubscribe(client, wsMessage)

	default:
		logger.Warn("WebSocket: unknown frame type '%s' from user %s", wsMessage.Type, client.UserID)
		m.sendErrorToClient(client, "Unknown message type")
	}
}

func (m *Manager) handleSubscribe(client *Client, msg WSMessage) {
	if msg.Event != "" && msg.Event != string(realtime.EventInsert) {
		m.sendErrorToClient(client, "Only INSERT events are supported")
		return
	}

	if err := m.authorizeSubscription(client, msg.Table, msg.Filter); err != "" {
		m.sendErrorToClient(client, err)
		return
	}

	sub := m.hub.Subscribe(msg.Table, realtime.EventInsert, msg.Filter)
	client.addSubscription(sub)

	go m.forwardEvents(client, sub)

	m.sendToClient(client, WSMessage{
		Type:           MessageTypeSubscribed,
		Table:          msg.Table,
		SubscriptionID: sub.ID,
	})
}

func (m *Manager) handleUnsubscribe(client *Client, msg WSMessage) {
	sub, ok := client.removeSubscription(msg.SubscriptionID)
	if !ok {
		m.sendErrorToClient(client, "Unknown subscription")
		return
	}

	sub.Unsubscribe()
	m.sendToClient(client, WSMessage{
		Type:           MessageTypeUnsubscribed,
		SubscriptionID: msg.SubscriptionID,
	})
}

// authorizeSubscription enforces the row-level access rules the backend
// platform would otherwise apply: users may only watch their own order
// lists and the chat of orders they participate in. Returns an error
// message, or "" when allowed.
func (m *Manager) authorizeSubscription(client *Client, table string, filter map[string]string) string {
	ctx := context.Background()

	switch table {
	case realtime.TableOrders:
		profile, err := m.profileRepo.GetByID(ctx, client.UserID)
		if err != nil {
			return "Failed to resolve profile"
		}
		if profile.IsAdmin() {
			return ""
		}
		if filter["buyer_id"] == client.UserID || filter["seller_id"] == client.UserID {
			return ""
		}
		return "Order subscriptions must be filtered by your own buyer_id or seller_id"

	case realtime.TableMessages:
		orderID := filter["order_id"]
		if orderID == "" {
			return "Message subscriptions require an order_id filter"
		}
		order, err := m.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return "Order not found"
		}
		if !order.Participant(client.UserID) {
			profile, err := m.profileRepo.GetByID(ctx, client.UserID)
			if err != nil || !profile.IsAdmin() {
				return "You are not a participant in this order"
			}
		}
		return ""

	default:
		return "Unknown table"
	}
}

// forwardEvents relays one subscription's stream to the client until the
// hub closes it.
func (m *Manager) forwardEvents(client *Client, sub *realtime.Subscription) {
	for event := range sub.Events {
		m.sendToClient(client, WSMessage{
			Type:           MessageTypeEvent,
			Table:          event.Table,
			Event:          string(event.Kind),
			SubscriptionID: sub.ID,
			Record:         event.Payload,
		})
	}
}

func (m *Manager) sendToClient(client *Client, msg WSMessage) {
	msg.Timestamp = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Error("WebSocket: failed to marshal frame: %v", err)
		return
	}

	if !client.trySend(payload) {
		logger.Warn("WebSocket: dropping frame for slow client %s", client.ConnID)
	}
}

func (m *Manager) sendErrorToClient(client *Client, message string) {
	m.sendToClient(client, WSMessage{
		Type:    MessageTypeError,
		Message: message,
	})
}
