package entity

import (
	"time"
)

// Service is a listed offering by a seller with a fixed price.
type Service struct {
	ID          string    `json:"id" firestore:"id"`
	SellerID    string    `json:"seller_id" firestore:"sellerId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	ImageURL    string    `json:"image_url" firestore:"imageURL"`
	Category    string    `json:"category" firestore:"category"`
	Featured    bool      `json:"featured" firestore:"featured"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// ServiceDetail is a service with its owning seller's profile joined in.
type ServiceDetail struct {
	Service
	Seller *Profile `json:"seller,omitempty" firestore:"-"`
}
