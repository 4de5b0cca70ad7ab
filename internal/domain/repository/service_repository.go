package repository

import (
	"context"

	"giglance/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	// List returns all services ordered featured-first, then newest-first.
	List(ctx context.Context, limit, offset int) ([]*entity.Service, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Service, int64, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
