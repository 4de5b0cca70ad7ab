package usecase

import (
	"context"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/internal/infrastructure/realtime"
	"giglance/pkg/errors"
	"giglance/pkg/logger"
)

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
	hub         *realtime.Hub
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	orderRepo repository.OrderRepository,
	profileRepo repository.ProfileRepository,
	hub *realtime.Hub,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		hub:         hub,
	}
}

// GetOrderMessages returns the chat history for an order, oldest-first.
// Only the order's participants and admins may read it.
func (uc *ChatUseCase) GetOrderMessages(ctx context.Context, userID, orderID string, limit, offset int) ([]*entity.Message, int64, error) {
	if err := uc.authorizeParticipant(ctx, userID, orderID); err != nil {
		return nil, 0, err
	}

	messages, total, err := uc.messageRepo.ListByOrderID(ctx, orderID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if messages == nil {
		messages = []*entity.Message{}
	}

	return messages, total, nil
}

type SendMessageInput struct {
	OrderID string
	Content string
}

// SendMessage appends a message to an order's chat and publishes the
// insert to the realtime hub. The sender sees its own message via the
// same round trip as everyone else; there is no local echo.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*entity.Message, error) {
	if err := uc.authorizeParticipant(ctx, userID, input.OrderID); err != nil {
		return nil, err
	}

	sender, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Sender profile", err)
	}

	message := &entity.Message{
		OrderID:    input.OrderID,
		SenderID:   userID,
		SenderName: sender.FullName,
		Content:    input.Content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		logger.Error("Failed to persist message on order %s: %v", input.OrderID, err)
		return nil, err
	}

	uc.hub.Publish(realtime.MessageInsert(message))

	return message, nil
}

func (uc *ChatUseCase) authorizeParticipant(ctx context.Context, userID, orderID string) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Participant(userID) {
		return nil
	}

	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err == nil && profile.IsAdmin() {
		return nil
	}

	return errors.Forbidden("You are not a participant in this order", nil)
}
