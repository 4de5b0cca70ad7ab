package repository

import (
	"context"

	"giglance/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListByOrderID returns the full message history for an order,
	// oldest-first.
	ListByOrderID(ctx context.Context, orderID string, limit, offset int) ([]*entity.Message, int64, error)
}
