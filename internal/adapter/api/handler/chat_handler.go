package handler

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/usecase"
	"giglance/pkg/errors"
	"giglance/pkg/response"
	"giglance/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"message" validate:"required,min=1"`
}

// GetOrderMessages returns an order's chat history, oldest-first.
func (h *ChatHandler) GetOrderMessages(c echo.Context) error {
	orderID := c.Param("id")
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.GetOrderMessages(c.Request().Context(), userID, orderID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

// SendMessage appends a message to an order's chat. Delivery to open
// clients happens over the realtime channel, including back to the
// sender.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	orderID := c.Param("id")
	userID := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		OrderID: orderID,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
