package handler

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/usecase"
	"giglance/pkg/errors"
	"giglance/pkg/response"
)

type PaymentHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewPaymentHandler(checkoutUseCase *usecase.CheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type confirmPaymentRequest struct {
	PaymentMethodID string         `json:"payment_method_id" validate:"required"`
	BuyerID         string         `json:"buyer_id"`
	ServiceID       string         `json:"service_id" validate:"required"`
	Contact         contactRequest `json:"contact" validate:"required"`
	GiftNote        string         `json:"gift_note"`
	IdempotencyKey  string         `json:"idempotency_key" validate:"required"`
}

// ConfirmPayment validates a payment method with the gateway and then
// performs the order insert server side. Supplying a buyer_id other
// than the caller requires admin privileges.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	order, err := h.checkoutUseCase.ConfirmPayment(c.Request().Context(), actorID, req.BuyerID, usecase.CheckoutServiceInput{
		ServiceID:       req.ServiceID,
		Contact:         contactInput(req.Contact),
		GiftNote:        req.GiftNote,
		PaymentMethodID: req.PaymentMethodID,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
