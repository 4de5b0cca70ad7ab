package usecase

import (
	"context"
	"strings"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/internal/domain/service"
	"giglance/internal/infrastructure/realtime"
	"giglance/pkg/errors"
	"giglance/pkg/logger"
	"giglance/pkg/utils"
)

type CheckoutUseCase struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	profileRepo repository.ProfileRepository
	payment     service.PaymentGatewayService
	giftNotes   service.GiftNoteService
	hub         *realtime.Hub
	taxRate     float64
}

func NewCheckoutUseCase(
	orderRepo repository.OrderRepository,
	serviceRepo repository.ServiceRepository,
	profileRepo repository.ProfileRepository,
	payment service.PaymentGatewayService,
	giftNotes service.GiftNoteService,
	hub *realtime.Hub,
	taxRate float64,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
		payment:     payment,
		giftNotes:   giftNotes,
		hub:         hub,
		taxRate:     taxRate,
	}
}

// ContactInput carries the buyer's contact and shipping fields collected
// on the checkout form.
type ContactInput struct {
	FirstName     string
	LastName      string
	Email         string
	StreetAddress string
	City          string
	ZipCode       string
	Country       string
}

type CheckoutServiceInput struct {
	ServiceID        string
	Contact          ContactInput
	GiftNote         string
	GenerateGiftNote bool
	PaymentMethodID  string
	IdempotencyKey   string
}

// CheckoutService places an order for a single service. The charged and
// persisted total is the exact service price snapshot, no tax.
func (uc *CheckoutUseCase) CheckoutService(ctx context.Context, buyerID string, input CheckoutServiceInput) (*entity.Order, error) {
	if existing := uc.findByIdempotencyKey(ctx, input.IdempotencyKey); existing != nil {
		return existing, nil
	}

	svc, err := uc.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	if svc.SellerID == buyerID {
		return nil, errors.BadRequest("Cannot order your own service", nil)
	}

	if _, err := uc.profileRepo.GetByID(ctx, svc.SellerID); err != nil {
		return nil, errors.BadRequest("Seller is no longer available", err)
	}

	total := utils.RoundAmount(svc.Price)
	giftNote := uc.resolveGiftNote(ctx, input.GiftNote, input.GenerateGiftNote, []string{svc.Title}, input.Contact.FirstName)

	order := &entity.Order{
		BuyerID:        buyerID,
		SellerID:       svc.SellerID,
		ServiceID:      svc.ID,
		FirstName:      input.Contact.FirstName,
		LastName:       input.Contact.LastName,
		Email:          input.Contact.Email,
		StreetAddress:  input.Contact.StreetAddress,
		City:           input.Contact.City,
		ZipCode:        input.Contact.ZipCode,
		Country:        input.Contact.Country,
		ProductName:    svc.Title,
		GiftNote:       giftNote,
		TotalAmount:    total,
		IdempotencyKey: input.IdempotencyKey,
	}

	items := []service.ItemDetail{{
		ID:       svc.ID,
		Price:    svc.Price,
		Quantity: 1,
		Name:     svc.Title,
		Category: svc.Category,
	}}

	return uc.settleAndPersist(ctx, order, input.PaymentMethodID, items)
}

type CartItemInput struct {
	ServiceID string
	Quantity  int
}

type CheckoutCartInput struct {
	Items            []CartItemInput
	Contact          ContactInput
	GiftNote         string
	GenerateGiftNote bool
	PaymentMethodID  string
	IdempotencyKey   string
}

// CheckoutCart places one order for a cart of services from a single
// seller. The total is the item sum plus tax, rounded to two decimals.
func (uc *CheckoutUseCase) CheckoutCart(ctx context.Context, buyerID string, input CheckoutCartInput) (*entity.Order, error) {
	if existing := uc.findByIdempotencyKey(ctx, input.IdempotencyKey); existing != nil {
		return existing, nil
	}

	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	var (
		sum      float64
		names    []string
		sellerID string
		firstID  string
		items    []service.ItemDetail
	)

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.BadRequest("Item quantity must be positive", nil)
		}

		svc, err := uc.serviceRepo.GetByID(ctx, item.ServiceID)
		if err != nil {
			return nil, err
		}

		if svc.SellerID == buyerID {
			return nil, errors.BadRequest("Cannot order your own service", nil)
		}

		if sellerID == "" {
			sellerID = svc.SellerID
			firstID = svc.ID
		} else if svc.SellerID != sellerID {
			return nil, errors.BadRequest("All cart items must belong to the same seller", nil)
		}

		sum += svc.Price * float64(item.Quantity)
		names = append(names, svc.Title)
		items = append(items, service.ItemDetail{
			ID:       svc.ID,
			Price:    svc.Price,
			Quantity: int32(item.Quantity),
			Name:     svc.Title,
			Category: svc.Category,
		})
	}

	if _, err := uc.profileRepo.GetByID(ctx, sellerID); err != nil {
		return nil, errors.BadRequest("Seller is no longer available", err)
	}

	total := utils.RoundAmount(sum * (1 + uc.taxRate))
	giftNote := uc.resolveGiftNote(ctx, input.GiftNote, input.GenerateGiftNote, names, input.Contact.FirstName)

	order := &entity.Order{
		BuyerID:        buyerID,
		SellerID:       sellerID,
		ServiceID:      firstID,
		FirstName:      input.Contact.FirstName,
		LastName:       input.Contact.LastName,
		Email:          input.Contact.Email,
		StreetAddress:  input.Contact.StreetAddress,
		City:           input.Contact.City,
		ZipCode:        input.Contact.ZipCode,
		Country:        input.Contact.Country,
		ProductName:    strings.Join(names, ", "),
		GiftNote:       giftNote,
		TotalAmount:    total,
		IdempotencyKey: input.IdempotencyKey,
	}

	return uc.settleAndPersist(ctx, order, input.PaymentMethodID, items)
}

// ConfirmPayment is the server-side payment confirmation path: validate
// the payment method with the gateway, then perform the order insert.
// Placing an order on another user's behalf requires admin privileges,
// mirroring a privileged service-role write.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, actorID, buyerID string, input CheckoutServiceInput) (*entity.Order, error) {
	if buyerID == "" || buyerID == actorID {
		return uc.CheckoutService(ctx, actorID, input)
	}

	actor, err := uc.profileRepo.GetByID(ctx, actorID)
	if err != nil || !actor.IsAdmin() {
		return nil, errors.Forbidden("Cannot place an order on behalf of another user", nil)
	}

	return uc.CheckoutService(ctx, buyerID, input)
}

// findByIdempotencyKey returns the already-created order for a repeated
// submit, or nil. A second click on the confirm button must not produce
// a second order.
func (uc *CheckoutUseCase) findByIdempotencyKey(ctx context.Context, key string) *entity.Order {
	if key == "" {
		return nil
	}

	existing, err := uc.orderRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil
	}

	logger.Info("Duplicate checkout submit, returning order %s for key %s", existing.ID, key)
	return existing
}

// PreviewGiftNote generates a gift note for the checkout form's
// generate button. The result is editable by the buyer before submit.
func (uc *CheckoutUseCase) PreviewGiftNote(ctx context.Context, itemNames []string, recipient string) string {
	return uc.giftNotes.Generate(ctx, itemNames, recipient)
}

// resolveGiftNote prefers the manually entered note; generation failures
// fall back to a canned string and never block checkout.
func (uc *CheckoutUseCase) resolveGiftNote(ctx context.Context, manual string, generate bool, itemNames []string, recipient string) string {
	if manual != "" || !generate {
		return manual
	}

	return uc.giftNotes.Generate(ctx, itemNames, recipient)
}

func (uc *CheckoutUseCase) settleAndPersist(ctx context.Context, order *entity.Order, paymentMethodID string, items []service.ItemDetail) (*entity.Order, error) {
	payment, err := uc.payment.Charge(ctx, service.PaymentRequest{
		OrderID:         order.IdempotencyKey,
		Amount:          order.TotalAmount,
		PaymentMethodID: paymentMethodID,
		CustomerDetails: service.CustomerDetails{
			FirstName: order.FirstName,
			LastName:  order.LastName,
			Email:     order.Email,
		},
		ItemDetails: items,
	})
	if err != nil {
		return nil, errors.BadRequest("Payment was declined", err)
	}

	order.PaymentStatus = entity.PaymentStatusPaid
	order.Status = entity.OrderStatusPlaced
	order.PaymentRef = payment.Reference

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	uc.hub.Publish(realtime.OrderInsert(order))

	return order, nil
}
