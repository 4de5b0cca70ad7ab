package service

import (
	"context"
	"fmt"
	"log"
	"time"
)

// PaymentRequest represents a payment authorization request
type PaymentRequest struct {
	OrderID         string
	Amount          float64
	PaymentMethodID string
	CustomerDetails CustomerDetails
	ItemDetails     []ItemDetail
}

// CustomerDetails represents customer information
type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
}

// ItemDetail represents an item in the charge
type ItemDetail struct {
	ID       string
	Price    float64
	Quantity int32
	Name     string
	Category string
}

// PaymentResponse represents the gateway's answer
type PaymentResponse struct {
	Reference string
	OrderID   string
	Status    string // "settled", "declined"
}

// PaymentGatewayService interface for payment operations
type PaymentGatewayService interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentResponse, error)
}

// SimulatedPaymentService - no real money moves. Every well-formed charge
// settles immediately with a synthetic reference.
type SimulatedPaymentService struct{}

func NewSimulatedPaymentService() *SimulatedPaymentService {
	return &SimulatedPaymentService{}
}

func (sps *SimulatedPaymentService) Charge(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	log.Printf("Simulating charge for order: %s, amount: %.2f", req.OrderID, req.Amount)

	if req.Amount <= 0 {
		return &PaymentResponse{
			OrderID: req.OrderID,
			Status:  "declined",
		}, fmt.Errorf("charge amount must be positive")
	}

	response := &PaymentResponse{
		Reference: fmt.Sprintf("sim-%s-%d", req.OrderID, time.Now().Unix()),
		OrderID:   req.OrderID,
		Status:    "settled",
	}

	log.Printf("Simulated charge settled: %s", response.Reference)
	return response, nil
}
