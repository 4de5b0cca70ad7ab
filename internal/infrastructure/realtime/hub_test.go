package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"giglance/internal/domain/entity"
)

func TestPublishDeliversToMatchingSubscriptions(t *testing.T) {
	hub := NewHub()

	buyerSub := hub.Subscribe(TableOrders, EventInsert, map[string]string{"buyer_id": "buyer-1"})
	sellerSub := hub.Subscribe(TableOrders, EventInsert, map[string]string{"seller_id": "seller-1"})
	otherSub := hub.Subscribe(TableOrders, EventInsert, map[string]string{"buyer_id": "buyer-2"})

	order := &entity.Order{ID: "order-1", BuyerID: "buyer-1", SellerID: "seller-1"}
	hub.Publish(OrderInsert(order))

	for _, sub := range []*Subscription{buyerSub, sellerSub} {
		select {
		case event := <-sub.Events:
			assert.Equal(t, TableOrders, event.Table)
			assert.Equal(t, EventInsert, event.Kind)
			assert.Equal(t, order, event.Payload)
		default:
			t.Fatalf("subscription %s did not receive the event", sub.ID)
		}
	}

	select {
	case <-otherSub.Events:
		t.Fatal("subscription for another buyer must not match")
	default:
	}
}

func TestEmptyFilterMatchesWholeTable(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(TableMessages, EventInsert, nil)

	hub.Publish(MessageInsert(&entity.Message{ID: "m1", OrderID: "order-1"}))
	hub.Publish(MessageInsert(&entity.Message{ID: "m2", OrderID: "order-2"}))

	assert.Len(t, sub.Events, 2)
}

func TestEventsDoNotCrossTables(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(TableOrders, EventInsert, nil)
	hub.Publish(MessageInsert(&entity.Message{ID: "m1", OrderID: "order-1"}))

	assert.Empty(t, sub.Events)
}

func TestUnsubscribeClosesEventsChannel(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(TableOrders, EventInsert, nil)
	assert.Equal(t, 1, hub.SubscriberCount())

	sub.Unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.Events
	assert.False(t, open)

	// second unsubscribe is a no-op
	sub.Unsubscribe()
}

func TestSendAfterUnsubscribeDoesNotPanic(t *testing.T) {
	hub := NewHub()

	// A publisher may snapshot a subscription and deliver to it after
	// the subscriber has already unsubscribed.
	sub := hub.Subscribe(TableMessages, EventInsert, nil)
	hub.Unsubscribe(sub.ID)

	assert.NotPanics(t, func() {
		delivered := sub.send(MessageInsert(&entity.Message{OrderID: "order-1"}))
		assert.True(t, delivered)
	})
}

func TestConcurrentPublishAndUnsubscribe(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		sub := hub.Subscribe(TableMessages, EventInsert, nil)

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Publish(MessageInsert(&entity.Message{OrderID: "order-1"}))
			}
		}()
		go func(s *Subscription) {
			defer wg.Done()
			s.Unsubscribe()
		}(sub)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(TableMessages, EventInsert, nil)

	// fill the buffer without consuming, then publish once more
	for i := 0; i <= subscriptionBuffer; i++ {
		hub.Publish(MessageInsert(&entity.Message{OrderID: "order-1"}))
	}

	assert.Equal(t, 0, hub.SubscriberCount())

	// channel was closed after draining the buffered events
	for i := 0; i < subscriptionBuffer; i++ {
		<-sub.Events
	}
	_, open := <-sub.Events
	assert.False(t, open)
}
