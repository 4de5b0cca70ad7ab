package repository

import (
	"context"

	"giglance/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error)
	// ListByField lists orders where field (buyerId or sellerId) equals
	// value, newest-first.
	ListByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.Order, int64, error)
}
