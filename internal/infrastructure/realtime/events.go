package realtime

import "giglance/internal/domain/entity"

// Tables clients may subscribe to.
const (
	TableOrders   = "orders"
	TableMessages = "messages"
)

// OrderInsert builds the event published when an order row is created.
// Dashboard subscribers filter on buyer_id or seller_id.
func OrderInsert(order *entity.Order) Event {
	return NewInsertEvent(TableOrders, order, map[string]string{
		"buyer_id":  order.BuyerID,
		"seller_id": order.SellerID,
	})
}

// MessageInsert builds the event published when a chat message is
// created, scoped to its order.
func MessageInsert(message *entity.Message) Event {
	return NewInsertEvent(TableMessages, message, map[string]string{
		"order_id": message.OrderID,
	})
}
