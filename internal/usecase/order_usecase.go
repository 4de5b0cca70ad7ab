package usecase

import (
	"context"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/pkg/errors"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, profileRepo repository.ProfileRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
	}
}

// ListOrders returns the caller's orders, newest-first. Sellers see
// orders addressed to them, everyone else sees orders they placed.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, errors.NotFound("Profile", err)
	}

	field := "buyerId"
	if profile.IsSeller() {
		field = "sellerId"
	}

	orders, total, err := uc.orderRepo.ListByField(ctx, field, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, total, nil
}

// ListOrdersFor lets an admin list either side of the order book by an
// explicit buyer or seller filter.
func (uc *OrderUseCase) ListOrdersFor(ctx context.Context, adminID, field, value string, limit, offset int) ([]*entity.Order, int64, error) {
	profile, err := uc.profileRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, 0, errors.NotFound("Profile", err)
	}

	if !profile.IsAdmin() {
		return nil, 0, errors.Forbidden("Admin privileges required", nil)
	}

	if field != "buyerId" && field != "sellerId" {
		return nil, 0, errors.BadRequest("Filter field must be buyerId or sellerId", nil)
	}

	orders, total, err := uc.orderRepo.ListByField(ctx, field, value, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, total, nil
}

// GetOrder returns one order; only its participants and admins may see it.
func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Participant(userID) {
		profile, err := uc.profileRepo.GetByID(ctx, userID)
		if err != nil || !profile.IsAdmin() {
			return nil, errors.Forbidden("You are not a participant in this order", nil)
		}
	}

	return order, nil
}
