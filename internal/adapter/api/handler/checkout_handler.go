package handler

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/usecase"
	"giglance/pkg/errors"
	"giglance/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type contactRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zip_code" validate:"required"`
	Country       string `json:"country"`
}

type checkoutServiceRequest struct {
	ServiceID        string         `json:"service_id" validate:"required"`
	Contact          contactRequest `json:"contact" validate:"required"`
	GiftNote         string         `json:"gift_note"`
	GenerateGiftNote bool           `json:"generate_gift_note"`
	PaymentMethodID  string         `json:"payment_method_id"`
	IdempotencyKey   string         `json:"idempotency_key" validate:"required"`
}

type cartItemRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type checkoutCartRequest struct {
	Items            []cartItemRequest `json:"items" validate:"required,min=1,dive"`
	Contact          contactRequest    `json:"contact" validate:"required"`
	GiftNote         string            `json:"gift_note"`
	GenerateGiftNote bool              `json:"generate_gift_note"`
	PaymentMethodID  string            `json:"payment_method_id"`
	IdempotencyKey   string            `json:"idempotency_key" validate:"required"`
}

type giftNoteRequest struct {
	ItemNames []string `json:"item_names" validate:"required,min=1"`
	Recipient string   `json:"recipient" validate:"required"`
}

func contactInput(req contactRequest) usecase.ContactInput {
	return usecase.ContactInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
	}
}

// CheckoutService places an order for one service at its exact price.
func (h *CheckoutHandler) CheckoutService(c echo.Context) error {
	var req checkoutServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	order, err := h.checkoutUseCase.CheckoutService(c.Request().Context(), buyerID, usecase.CheckoutServiceInput{
		ServiceID:        req.ServiceID,
		Contact:          contactInput(req.Contact),
		GiftNote:         req.GiftNote,
		GenerateGiftNote: req.GenerateGiftNote,
		PaymentMethodID:  req.PaymentMethodID,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

// CheckoutCart places one order for a cart of services, taxed.
func (h *CheckoutHandler) CheckoutCart(c echo.Context) error {
	var req checkoutCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	items := make([]usecase.CartItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.CartItemInput{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.checkoutUseCase.CheckoutCart(c.Request().Context(), buyerID, usecase.CheckoutCartInput{
		Items:            items,
		Contact:          contactInput(req.Contact),
		GiftNote:         req.GiftNote,
		GenerateGiftNote: req.GenerateGiftNote,
		PaymentMethodID:  req.PaymentMethodID,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

// GenerateGiftNote backs the checkout form's generate button. Always
// returns a usable string; generation failures degrade to a canned note.
func (h *CheckoutHandler) GenerateGiftNote(c echo.Context) error {
	var req giftNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	note := h.checkoutUseCase.PreviewGiftNote(c.Request().Context(), req.ItemNames, req.Recipient)

	return response.Success(c, map[string]string{"gift_note": note})
}
