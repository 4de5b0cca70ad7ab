package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedChargeSettles(t *testing.T) {
	sps := NewSimulatedPaymentService()

	resp, err := sps.Charge(context.Background(), PaymentRequest{
		OrderID: "key-1",
		Amount:  249.99,
	})

	assert.NoError(t, err)
	assert.Equal(t, "settled", resp.Status)
	assert.Equal(t, "key-1", resp.OrderID)
	assert.NotEmpty(t, resp.Reference)
}

func TestSimulatedChargeDeclinesNonPositiveAmount(t *testing.T) {
	sps := NewSimulatedPaymentService()

	resp, err := sps.Charge(context.Background(), PaymentRequest{
		OrderID: "key-2",
		Amount:  0,
	})

	assert.Error(t, err)
	assert.Equal(t, "declined", resp.Status)
}
