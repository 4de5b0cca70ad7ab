package entity

import "time"

// Message is one chat entry on an order. Messages are append-only and are
// never edited or deleted.
type Message struct {
	ID         string    `json:"id" firestore:"id"`
	OrderID    string    `json:"order_id" firestore:"orderId"`
	SenderID   string    `json:"sender_id" firestore:"senderId"`
	SenderName string    `json:"sender_name,omitempty" firestore:"senderName,omitempty"`
	Content    string    `json:"message" firestore:"content"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
