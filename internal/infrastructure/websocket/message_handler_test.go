package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"giglance/internal/domain/entity"
	"giglance/internal/infrastructure/realtime"
	"giglance/pkg/errors"
)

type stubOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }

func (r *stubOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return o, nil
}

func (r *stubOrderRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	return nil, errors.NotFound("Order", nil)
}

func (r *stubOrderRepo) ListByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.Order, int64, error) {
	return nil, 0, nil
}

type stubProfileRepo struct {
	profiles map[string]*entity.Profile
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *entity.Profile) error { return nil }

func (r *stubProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return p, nil
}

func (r *stubProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, errors.NotFound("Profile", nil)
}

func (r *stubProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }

func newTestManager() (*Manager, *realtime.Hub) {
	hub := realtime.NewHub()
	orders := &stubOrderRepo{orders: map[string]*entity.Order{
		"order-a": {ID: "order-a", BuyerID: "buyer-1", SellerID: "seller-1"},
	}}
	profiles := &stubProfileRepo{profiles: map[string]*entity.Profile{
		"buyer-1":  {ID: "buyer-1", Role: entity.RoleBuyer},
		"seller-1": {ID: "seller-1", Role: entity.RoleSeller},
		"admin-1":  {ID: "admin-1", Role: entity.RoleAdmin},
	}}
	return NewManager(hub, orders, profiles), hub
}

func recvFrame(t *testing.T, client *Client) WSMessage {
	t.Helper()
	select {
	case payload := <-client.Send:
		var frame WSMessage
		assert.NoError(t, json.Unmarshal(payload, &frame))
		return frame
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return WSMessage{}
	}
}

func TestPingPong(t *testing.T) {
	m, _ := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"ping"}`))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypePong, frame.Type)
}

func TestSubscribeOwnOrdersAllowed(t *testing.T) {
	m, hub := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","event":"INSERT","filter":{"buyer_id":"buyer-1"}}`))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeSubscribed, frame.Type)
	assert.NotEmpty(t, frame.SubscriptionID)
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestSubscribeOtherUsersOrdersDenied(t *testing.T) {
	m, hub := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","filter":{"buyer_id":"someone-else"}}`))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeError, frame.Type)
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestSubscribeMessagesRequiresParticipation(t *testing.T) {
	m, _ := newTestManager()

	seller := m.NewClient("conn-1", "seller-1", nil)
	m.HandleClientMessage(seller, []byte(`{"type":"subscribe","table":"messages","filter":{"order_id":"order-a"}}`))
	assert.Equal(t, MessageTypeSubscribed, recvFrame(t, seller).Type)

	admin := m.NewClient("conn-2", "admin-1", nil)
	m.HandleClientMessage(admin, []byte(`{"type":"subscribe","table":"messages","filter":{"order_id":"order-a"}}`))
	assert.Equal(t, MessageTypeSubscribed, recvFrame(t, admin).Type)

	stranger := m.NewClient("conn-3", "buyer-1", nil)
	m.HandleClientMessage(stranger, []byte(`{"type":"subscribe","table":"messages","filter":{"order_id":"order-missing"}}`))
	assert.Equal(t, MessageTypeError, recvFrame(t, stranger).Type)
}

func TestSubscribeMessagesWithoutOrderFilterDenied(t *testing.T) {
	m, _ := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"messages"}`))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeError, frame.Type)
}

func TestSubscribeRejectsNonInsertEvents(t *testing.T) {
	m, _ := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","event":"UPDATE","filter":{"buyer_id":"buyer-1"}}`))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeError, frame.Type)
}

func TestPublishedEventsReachSubscribedClient(t *testing.T) {
	m, hub := newTestManager()
	client := m.NewClient("conn-1", "seller-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","filter":{"seller_id":"seller-1"}}`))
	subscribed := recvFrame(t, client)
	assert.Equal(t, MessageTypeSubscribed, subscribed.Type)

	hub.Publish(realtime.OrderInsert(&entity.Order{ID: "order-new", BuyerID: "buyer-1", SellerID: "seller-1"}))

	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeEvent, frame.Type)
	assert.Equal(t, "orders", frame.Table)
	assert.Equal(t, "INSERT", frame.Event)
	assert.Equal(t, subscribed.SubscriptionID, frame.SubscriptionID)
}

func TestSendToDepartedClientDoesNotPanic(t *testing.T) {
	m, hub := newTestManager()
	client := m.NewClient("conn-1", "seller-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","filter":{"seller_id":"seller-1"}}`))
	recvFrame(t, client)

	// Teardown order on disconnect: subscriptions released, then the
	// send queue closed. A forwardEvents goroutine still draining its
	// stream must not crash the process.
	client.releaseSubscriptions()
	client.closeSend()

	assert.NotPanics(t, func() {
		m.sendToClient(client, WSMessage{Type: MessageTypePong})
	})

	hub.Publish(realtime.OrderInsert(&entity.Order{ID: "order-late", BuyerID: "buyer-1", SellerID: "seller-1"}))
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestUnsubscribeEndsStream(t *testing.T) {
	m, hub := newTestManager()
	client := m.NewClient("conn-1", "buyer-1", nil)

	m.HandleClientMessage(client, []byte(`{"type":"subscribe","table":"orders","filter":{"buyer_id":"buyer-1"}}`))
	subscribed := recvFrame(t, client)

	m.HandleClientMessage(client, []byte(`{"type":"unsubscribe","subscription_id":"`+subscribed.SubscriptionID+`"}`))
	frame := recvFrame(t, client)
	assert.Equal(t, MessageTypeUnsubscribed, frame.Type)
	assert.Equal(t, 0, hub.SubscriberCount())
}
