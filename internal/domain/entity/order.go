package entity

import (
	"time"
)

const (
	OrderStatusPlaced     = "placed"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPaid = "paid"
)

// Order is an append-only record created at checkout confirmation.
// ProductName and TotalAmount are snapshots taken at creation time, not
// live references to the service row.
type Order struct {
	ID        string `json:"id" firestore:"id"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	SellerID  string `json:"seller_id" firestore:"sellerId"`
	ServiceID string `json:"service_id" firestore:"serviceId"`

	FirstName     string `json:"first_name" firestore:"firstName"`
	LastName      string `json:"last_name" firestore:"lastName"`
	Email         string `json:"email" firestore:"email"`
	StreetAddress string `json:"street_address" firestore:"streetAddress"`
	City          string `json:"city" firestore:"city"`
	ZipCode       string `json:"zip_code" firestore:"zipCode"`
	Country       string `json:"country,omitempty" firestore:"country,omitempty"`

	ProductName    string  `json:"product_name" firestore:"productName"`
	GiftNote       string  `json:"gift_note,omitempty" firestore:"giftNote,omitempty"`
	TotalAmount    float64 `json:"total_amount" firestore:"totalAmount"`
	PaymentStatus  string  `json:"payment_status" firestore:"paymentStatus"`
	Status         string  `json:"order_status" firestore:"orderStatus"`
	PaymentRef     string  `json:"payment_ref,omitempty" firestore:"paymentRef,omitempty"`
	IdempotencyKey string  `json:"-" firestore:"idempotencyKey,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Participant reports whether userID is the buyer or the seller of the order.
func (o *Order) Participant(userID string) bool {
	return o.BuyerID == userID || o.SellerID == userID
}
