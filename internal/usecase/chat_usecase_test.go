package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"giglance/internal/domain/entity"
	"giglance/internal/infrastructure/realtime"
)

func newChatFixture() (*ChatUseCase, *fakeMessageRepo, *realtime.Hub) {
	profiles := newFakeProfileRepo(
		&entity.Profile{ID: "buyer-1", FullName: "Blair Buyer", Role: entity.RoleBuyer},
		&entity.Profile{ID: "seller-1", FullName: "Sam Seller", Role: entity.RoleSeller},
		&entity.Profile{ID: "admin-1", FullName: "Ada Admin", Role: entity.RoleAdmin},
		&entity.Profile{ID: "stranger-1", FullName: "Sal Stranger", Role: entity.RoleBuyer},
	)
	orders := newFakeOrderRepo(
		&entity.Order{ID: "order-a", BuyerID: "buyer-1", SellerID: "seller-1"},
	)
	messages := &fakeMessageRepo{}
	hub := realtime.NewHub()
	return NewChatUseCase(messages, orders, profiles, hub), messages, hub
}

func TestSendMessageSnapshotsSenderName(t *testing.T) {
	uc, messages, _ := newChatFixture()

	msg, err := uc.SendMessage(context.Background(), "buyer-1", SendMessageInput{
		OrderID: "order-a",
		Content: "Hello there",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Blair Buyer", msg.SenderName)
	assert.Equal(t, "buyer-1", msg.SenderID)
	assert.Len(t, messages.messages, 1)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	uc, messages, _ := newChatFixture()

	_, err := uc.SendMessage(context.Background(), "stranger-1", SendMessageInput{
		OrderID: "order-a",
		Content: "Let me in",
	})

	assert.Error(t, err)
	assert.Empty(t, messages.messages)
}

func TestSendMessagePublishesToOrderSubscribers(t *testing.T) {
	uc, _, hub := newChatFixture()

	sub := hub.Subscribe(realtime.TableMessages, realtime.EventInsert, map[string]string{"order_id": "order-a"})
	defer sub.Unsubscribe()

	other := hub.Subscribe(realtime.TableMessages, realtime.EventInsert, map[string]string{"order_id": "order-z"})
	defer other.Unsubscribe()

	first, err := uc.SendMessage(context.Background(), "seller-1", SendMessageInput{
		OrderID: "order-a",
		Content: "On it",
	})
	assert.NoError(t, err)

	second, err := uc.SendMessage(context.Background(), "buyer-1", SendMessageInput{
		OrderID: "order-a",
		Content: "Thanks!",
	})
	assert.NoError(t, err)

	// events arrive in creation order
	for _, want := range []*entity.Message{first, second} {
		select {
		case event := <-sub.Events:
			published, ok := event.Payload.(*entity.Message)
			assert.True(t, ok)
			assert.Equal(t, want.ID, published.ID)
			assert.Equal(t, want.Content, published.Content)
		default:
			t.Fatal("expected a message insert event for the order's subscriber")
		}
	}

	select {
	case <-other.Events:
		t.Fatal("subscriber for another order must not receive the event")
	default:
	}
}

func TestGetOrderMessagesAuthorization(t *testing.T) {
	uc, _, _ := newChatFixture()

	_, err := uc.SendMessage(context.Background(), "buyer-1", SendMessageInput{OrderID: "order-a", Content: "First"})
	assert.NoError(t, err)

	history, total, err := uc.GetOrderMessages(context.Background(), "seller-1", "order-a", 50, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, history, 1)

	// admins can read any order's chat
	_, _, err = uc.GetOrderMessages(context.Background(), "admin-1", "order-a", 50, 0)
	assert.NoError(t, err)

	_, _, err = uc.GetOrderMessages(context.Background(), "stranger-1", "order-a", 50, 0)
	assert.Error(t, err)
}
